package commands

import (
	"fmt"
	"time"

	"github.com/leapstack-labs/omopcdm/internal/cli/output"
	"github.com/leapstack-labs/omopcdm/internal/state"
	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded deployments",
		Long: `List create, drop, verify and load runs recorded in the deployment
ledger, newest first. The ledger lives at state_path (default .omopcdm/state.db).`,
		Example: `  omopcdm history
  omopcdm history --limit 5 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			store, err := cmdCtx.OpenLedger()
			if err != nil {
				return fmt.Errorf("open ledger: %w", err)
			}
			defer func() { _ = store.Close() }()

			deployments, err := store.ListDeployments(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return renderHistory(cmdCtx.Renderer, deployments)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of deployments (0 for all)")
	return cmd
}

func renderHistory(r *output.Renderer, deployments []*state.Deployment) error {
	if r.EffectiveMode() == output.ModeJSON {
		if deployments == nil {
			deployments = []*state.Deployment{}
		}
		return r.JSON(deployments)
	}
	if len(deployments) == 0 {
		r.Muted("No deployments recorded")
		return nil
	}

	styles := r.Styles()
	rows := make([][]string, 0, len(deployments))
	for _, d := range deployments {
		status := output.Title(string(d.Status))
		switch d.Status {
		case state.StatusCompleted:
			status = styles.StatusSuccess.String() + " " + status
		case state.StatusFailed:
			status = styles.StatusFailed.String() + " " + status
		default:
			status = styles.StatusRunning.String() + " " + status
		}
		duration := "-"
		if d.CompletedAt != nil {
			duration = d.Duration().Round(time.Millisecond).String()
		}
		rows = append(rows, []string{
			d.StartedAt.Local().Format("2006-01-02 15:04:05"),
			string(d.Operation),
			d.Catalog,
			d.Target,
			status,
			fmt.Sprint(d.Statements),
			duration,
			d.Error,
		})
	}
	r.Table([]string{"Started", "Operation", "Catalog", "Target", "Status", "Statements", "Duration", "Error"}, rows)
	return nil
}
