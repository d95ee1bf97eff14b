package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nimbus-weather/nimbus/internal/model"
	"github.com/nimbus-weather/nimbus/internal/view"
)

var astroCmd = &cobra.Command{
	Use:   "astro [location]",
	Short: "Show sunrise, sunset and moon data for today",
	Example: `  nimbus astro
  nimbus astro Reykjavik
  nimbus astro Sydney --mode emoji`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		defer deps.Close()

		start := time.Now()
		query := queryArg(args)

		snap, cacheHit, err := loadSnapshot(cmd, deps, query, false)
		if err != nil {
			return err
		}
		p, err := viewParams(deps, snap)
		if err != nil {
			return err
		}

		rep := view.Astro(snap, p)
		result := newResult(model.KindReport, fmt.Sprintf("astro %s", query), snap, rep, cacheHit, start)
		return emit(cmd.OutOrStdout(), deps, result, snap)
	},
}

func init() {
	rootCmd.AddCommand(astroCmd)
}
