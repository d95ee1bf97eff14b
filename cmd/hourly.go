package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nimbus-weather/nimbus/internal/model"
	"github.com/nimbus-weather/nimbus/internal/view"
)

var hourlyCmd = &cobra.Command{
	Use:   "hourly [location]",
	Short: "Show today's conditions at 3-hour intervals",
	Example: `  nimbus hourly
  nimbus hourly "San Francisco"
  nimbus hourly Berlin --mode text`,
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

		rows := view.Hourly(snap, p)
		result := newResult(model.KindReportList, fmt.Sprintf("hourly %s", query), snap, rows, cacheHit, start)
		return emit(cmd.OutOrStdout(), deps, result, snap)
	},
}

func init() {
	rootCmd.AddCommand(hourlyCmd)
}
