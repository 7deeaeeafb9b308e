package commands

import (
	"restaurant-api/config"
	"restaurant-api/seeders"

	"github.com/spf13/cobra"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo menu and fiscal settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, log, err := bootstrap(opts)
			if err != nil {
				return err
			}
			if err := config.Migrate(db); err != nil {
				return err
			}
			return seeders.Seed(db, log)
		},
	}
}
