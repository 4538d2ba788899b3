package cli

import (
	"github.com/spf13/cobra"

	"github.com/flexdao/flexgov/internal/cli/render"
	"github.com/flexdao/flexgov/internal/usecase"
)

// NewDelegateCmd creates the delegate command
func NewDelegateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delegate <account>",
		Short: "Grant one voting right to an account",
		Long: `Grant one voting right to an account.

Each delegation adds exactly one right; repeat the command to grant
more. Rights are consumed one per vote and never expire.`,
		Example: `  # Grant a voting right
  flexgov delegate 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266

  # Grant two rights
  flexgov delegate 0xf39F... && flexgov delegate 0xf39F...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			account, err := parseAccount(args[0])
			if err != nil {
				return err
			}

			caller, err := requireCaller(app)
			if err != nil {
				return err
			}

			result, err := app.Delegate.Execute(cmd.Context(), usecase.DelegateParams{
				Caller:  caller,
				Account: account,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return renderJSON(cmd.OutOrStdout(), result)
			}

			renderer := render.NewDelegateRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	return cmd
}
