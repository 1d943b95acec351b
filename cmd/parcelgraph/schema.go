package main

import (
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	var flagIndexes bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Declare identity constraints (and optionally performance indexes)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			if err := a.store.EnsureConstraints(ctx); err != nil {
				return err
			}
			a.log.Info("identity constraints ensured")

			if flagIndexes {
				if err := a.store.EnsureIndexes(ctx); err != nil {
					return err
				}
				a.log.Info("performance indexes ensured")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flagIndexes, "indexes", false, "also build performance indexes (normally done after load)")
	return cmd
}
