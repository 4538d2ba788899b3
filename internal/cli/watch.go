package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/flexdao/flexgov/internal/domain"
	"github.com/flexdao/flexgov/internal/domain/models"
	"github.com/flexdao/flexgov/internal/usecase"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch proposals live",
		Long: `Watch the proposal board in the terminal, refreshing as votes come
in and deadlines approach. Press q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if app.Config.NonInteractive {
				return fmt.Errorf("watch is not available in non-interactive mode")
			}

			model := newWatchModel(cmd.Context(), app.ListProposals, interval)
			program := tea.NewProgram(model)
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "Refresh interval")

	return cmd
}

// watchTickMsg triggers a refresh of the proposal board
type watchTickMsg time.Time

// watchDataMsg carries a refreshed listing
type watchDataMsg struct {
	result *usecase.ProposalListResult
	err    error
}

// watchModel is the bubbletea model for the live proposal board
type watchModel struct {
	ctx      context.Context
	list     *usecase.ListProposals
	interval time.Duration
	result   *usecase.ProposalListResult
	err      error
	now      time.Time
}

func newWatchModel(ctx context.Context, list *usecase.ListProposals, interval time.Duration) watchModel {
	return watchModel{
		ctx:      ctx,
		list:     list,
		interval: interval,
		now:      time.Now(),
	}
}

// Init is the initial command for bubbletea
func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.refresh, m.tick())
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) refresh() tea.Msg {
	result, err := m.list.Run(m.ctx, usecase.ListProposalsParams{Filter: domain.ProposalFilter{}})
	return watchDataMsg{result: result, err: err}
}

// Update handles messages and updates the model
func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	case watchTickMsg:
		m.now = time.Time(msg)
		return m, tea.Batch(m.refresh, m.tick())
	case watchDataMsg:
		m.result = msg.result
		m.err = msg.err
	}
	return m, nil
}

// View renders the proposal board
func (m watchModel) View() string {
	var b strings.Builder

	title := color.New(color.Bold, color.FgHiWhite)
	b.WriteString(title.Sprint("Proposals"))
	b.WriteString(color.New(color.Faint).Sprintf("  (refreshed %s, q to quit)\n\n", m.now.Format("15:04:05")))

	if m.err != nil {
		b.WriteString(color.New(color.FgRed).Sprintf("error: %v\n", m.err))
		return b.String()
	}
	if m.result == nil {
		b.WriteString("loading...\n")
		return b.String()
	}
	if len(m.result.Proposals) == 0 {
		b.WriteString("No proposals found\n")
		return b.String()
	}

	for _, p := range m.result.Proposals {
		b.WriteString(fmt.Sprintf("  #%-3d %-40s %s  %s\n",
			p.ID, truncate(p.Title, 40), watchStatusLabel(p), watchDeadline(p, m.now)))
		b.WriteString(color.New(color.Faint).Sprintf("       approve %d / reject %d, stake %s\n",
			p.ApproveCount, p.RejectCount, p.TotalStake))
	}

	b.WriteString(color.New(color.Faint).Sprintf("\n  escrow balance: %s\n", m.result.Summary.EscrowBalance))

	return b.String()
}

func watchStatusLabel(p *models.Proposal) string {
	switch p.Status() {
	case models.ProposalStatusAccepted:
		return color.New(color.FgGreen).Sprint("accepted")
	case models.ProposalStatusRejected:
		return color.New(color.FgRed).Sprint("rejected")
	default:
		return color.New(color.FgYellow).Sprint("open")
	}
}

func watchDeadline(p *models.Proposal, now time.Time) string {
	if p.Resolved {
		return ""
	}
	remaining := p.Deadline.Sub(now)
	if remaining <= 0 {
		return color.New(color.FgYellow).Sprint("awaiting resolution")
	}
	return color.New(color.Faint).Sprintf("closes in %s", remaining.Round(time.Minute))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
