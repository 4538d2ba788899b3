package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/flexdao/flexgov/internal/domain"
)

const BalancesFile = "balances.json"

// Embedded is a file-backed fungible-token ledger with ERC-20 transfer
// and allowance semantics. It exists to exercise the engine's TokenLedger
// port end-to-end; it does not define token semantics beyond that narrow
// contract and is swappable for a real ledger client.
type Embedded struct {
	dataDir string
	mu      sync.RWMutex

	balances   map[common.Address]*big.Int
	allowances map[common.Address]map[common.Address]*big.Int
}

type ledgerState struct {
	Balances   map[common.Address]*big.Int                    `json:"balances"`
	Allowances map[common.Address]map[common.Address]*big.Int `json:"allowances,omitempty"`
}

// NewEmbedded opens the ledger at the given data dir, funding the genesis
// accounts on first use. Genesis amounts are decimal strings keyed by hex
// address; they only apply when no ledger state exists yet.
func NewEmbedded(dataDir string, genesis map[string]string) (*Embedded, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	l := &Embedded{
		dataDir:    dataDir,
		balances:   make(map[common.Address]*big.Int),
		allowances: make(map[common.Address]map[common.Address]*big.Int),
	}

	loaded, err := l.load()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger state: %w", err)
	}

	if !loaded {
		for account, amount := range genesis {
			if !common.IsHexAddress(account) {
				return nil, fmt.Errorf("invalid genesis account %q", account)
			}
			value, ok := new(big.Int).SetString(amount, 10)
			if !ok || value.Sign() < 0 {
				return nil, fmt.Errorf("invalid genesis amount %q for %s", amount, account)
			}
			l.balances[common.HexToAddress(account)] = value
		}
		if err := l.save(); err != nil {
			return nil, fmt.Errorf("failed to persist genesis state: %w", err)
		}
	}

	return l, nil
}

func (l *Embedded) load() (bool, error) {
	data, err := os.ReadFile(filepath.Join(l.dataDir, BalancesFile))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var state ledgerState
	if err := json.Unmarshal(data, &state); err != nil {
		return false, err
	}
	if state.Balances != nil {
		l.balances = state.Balances
	}
	if state.Allowances != nil {
		l.allowances = state.Allowances
	}
	return true, nil
}

func (l *Embedded) save() error {
	state := ledgerState{Balances: l.balances, Allowances: l.allowances}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(l.dataDir, BalancesFile), data, 0644)
}

func (l *Embedded) balanceOf(account common.Address) *big.Int {
	if balance, ok := l.balances[account]; ok {
		return balance
	}
	return big.NewInt(0)
}

// BalanceOf returns the held balance of an account
func (l *Embedded) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return new(big.Int).Set(l.balanceOf(account)), nil
}

// Transfer moves tokens from one account to another, failing with
// InsufficientBalance when the source cannot cover the amount.
func (l *Embedded) Transfer(ctx context.Context, from, to common.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.move(from, to, amount); err != nil {
		return err
	}
	return l.save()
}

// TransferFrom moves tokens under a prior allowance grant from the owner
// to the recipient, consuming the spender's allowance.
func (l *Embedded) TransferFrom(ctx context.Context, spender, owner, to common.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	allowance := l.allowanceOf(owner, spender)
	if allowance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %s allows %s to spend %s, need %s",
			domain.ErrInsufficientAllowance, owner.Hex(), spender.Hex(), allowance, amount)
	}

	if err := l.move(owner, to, amount); err != nil {
		return err
	}

	l.allowances[owner][spender] = new(big.Int).Sub(allowance, amount)
	return l.save()
}

// Approve sets the spender's allowance on the owner's balance
func (l *Embedded) Approve(ctx context.Context, owner, spender common.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.allowances[owner] == nil {
		l.allowances[owner] = make(map[common.Address]*big.Int)
	}
	l.allowances[owner][spender] = new(big.Int).Set(amount)
	return l.save()
}

// Allowance returns the remaining allowance granted by owner to spender
func (l *Embedded) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return new(big.Int).Set(l.allowanceOf(owner, spender)), nil
}

func (l *Embedded) allowanceOf(owner, spender common.Address) *big.Int {
	if grants, ok := l.allowances[owner]; ok {
		if allowance, ok := grants[spender]; ok {
			return allowance
		}
	}
	return big.NewInt(0)
}

func (l *Embedded) move(from, to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return domain.ErrInvalidAmount
	}

	balance := l.balanceOf(from)
	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %s holds %s, need %s",
			domain.ErrInsufficientBalance, from.Hex(), balance, amount)
	}

	l.balances[from] = new(big.Int).Sub(balance, amount)
	l.balances[to] = new(big.Int).Add(l.balanceOf(to), amount)
	return nil
}
