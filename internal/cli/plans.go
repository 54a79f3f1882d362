package cli

import (
	"github.com/spf13/cobra"

	"github.com/myrinnew/wpkit/internal/tui"
)

func newPlansCmd(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "Browse the site's subscription plans",
		RunE: func(_ *cobra.Command, _ []string) error {
			deps, cleanup, err := setup(*debug)
			if err != nil {
				return err
			}
			defer cleanup()
			return tui.RunPlans(deps)
		},
	}
}
