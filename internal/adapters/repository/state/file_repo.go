package state

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
)

const (
	ProposalsFile = "proposals.json"
	VotersFile    = "voters.json"
	VotesFile     = "votes.json"
)

// FileRepository stores the governance state in json files on the system.
// Proposals are kept as a slice indexed by id; vote records keep their
// voting order in the persisted slice and are indexed in memory.
type FileRepository struct {
	dataDir string
	mu      sync.RWMutex

	proposals []*models.Proposal
	voters    map[common.Address]*models.Voter
	votes     []*models.VoteRecord

	votesByKey      map[models.VoteRecordKey]*models.VoteRecord
	votesByProposal map[uint64][]*models.VoteRecord
	votesByVoter    map[common.Address][]*models.VoteRecord
}

// NewFileRepository creates a repository rooted at the given data dir
func NewFileRepository(dataDir string) (*FileRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	r := &FileRepository{
		dataDir:         dataDir,
		voters:          make(map[common.Address]*models.Voter),
		votesByKey:      make(map[models.VoteRecordKey]*models.VoteRecord),
		votesByProposal: make(map[uint64][]*models.VoteRecord),
		votesByVoter:    make(map[common.Address][]*models.VoteRecord),
	}

	if err := r.load(); err != nil {
		return nil, fmt.Errorf("failed to load governance state: %w", err)
	}

	return r, nil
}

// load reads all state files and rebuilds the in-memory indexes
func (r *FileRepository) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadFile(ProposalsFile, &r.proposals); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load proposals: %w", err)
	}
	if err := r.loadFile(VotersFile, &r.voters); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load voters: %w", err)
	}
	if err := r.loadFile(VotesFile, &r.votes); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load votes: %w", err)
	}

	for _, record := range r.votes {
		r.indexRecord(record)
	}

	return nil
}

func (r *FileRepository) loadFile(filename string, v any) error {
	data, err := os.ReadFile(filepath.Join(r.dataDir, filename))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (r *FileRepository) saveFile(filename string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filename, err)
	}
	return os.WriteFile(filepath.Join(r.dataDir, filename), data, 0644)
}

func (r *FileRepository) indexRecord(record *models.VoteRecord) {
	r.votesByKey[record.Key()] = record
	r.votesByProposal[record.ProposalID] = append(r.votesByProposal[record.ProposalID], record)
	r.votesByVoter[record.Voter] = append(r.votesByVoter[record.Voter], record)
}

// AppendProposal assigns the next index and persists the proposal
func (r *FileRepository) AppendProposal(ctx context.Context, proposal *models.Proposal) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	proposal.ID = uint64(len(r.proposals))
	r.proposals = append(r.proposals, proposal)

	if err := r.saveFile(ProposalsFile, r.proposals); err != nil {
		return 0, err
	}
	return proposal.ID, nil
}

// GetProposal returns a proposal by id
func (r *FileRepository) GetProposal(ctx context.Context, id uint64) (*models.Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id >= uint64(len(r.proposals)) {
		return nil, domain.ErrProposalNotFound
	}
	return r.proposals[id], nil
}

// ListProposals returns proposals in creation order, optionally filtered
func (r *FileRepository) ListProposals(ctx context.Context, filter domain.ProposalFilter) ([]*models.Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Proposal, 0, len(r.proposals))
	for _, p := range r.proposals {
		if filter.Status != "" && p.Status() != filter.Status {
			continue
		}
		if filter.Creator != "" && p.Creator != common.HexToAddress(filter.Creator) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// CountProposals returns the total number of proposals ever created
func (r *FileRepository) CountProposals(ctx context.Context) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return uint64(len(r.proposals)), nil
}

// SaveProposal persists mutated tallies or resolution state
func (r *FileRepository) SaveProposal(ctx context.Context, proposal *models.Proposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if proposal.ID >= uint64(len(r.proposals)) {
		return domain.ErrProposalNotFound
	}
	r.proposals[proposal.ID] = proposal

	return r.saveFile(ProposalsFile, r.proposals)
}

// GetVoter returns the voter record for an account
func (r *FileRepository) GetVoter(ctx context.Context, account common.Address) (*models.Voter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	voter, ok := r.voters[account]
	if !ok {
		return nil, domain.ErrVoterNotFound
	}
	return voter, nil
}

// SaveVoter persists a voter record
func (r *FileRepository) SaveVoter(ctx context.Context, voter *models.Voter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.voters[voter.Account] = voter
	return r.saveFile(VotersFile, r.voters)
}

// GetVoteRecord returns the record for a (proposal, voter) pair
func (r *FileRepository) GetVoteRecord(ctx context.Context, key models.VoteRecordKey) (*models.VoteRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.votesByKey[key]
	if !ok {
		return nil, domain.ErrNotAValidVoter
	}
	return record, nil
}

// ListVoteRecords returns a proposal's records in voting order
func (r *FileRepository) ListVoteRecords(ctx context.Context, proposalID uint64) ([]*models.VoteRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.votesByProposal[proposalID]
	out := make([]*models.VoteRecord, len(records))
	copy(out, records)
	return out, nil
}

// ListVoterRecords returns all records held by one voter
func (r *FileRepository) ListVoterRecords(ctx context.Context, account common.Address) ([]*models.VoteRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.votesByVoter[account]
	out := make([]*models.VoteRecord, len(records))
	copy(out, records)
	return out, nil
}

// SaveVoteRecord persists a new or mutated vote record
func (r *FileRepository) SaveVoteRecord(ctx context.Context, record *models.VoteRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.votesByKey[record.Key()]; !exists {
		r.votes = append(r.votes, record)
		r.indexRecord(record)
	}

	return r.saveFile(VotesFile, r.votes)
}
