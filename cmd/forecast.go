package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nimbus-weather/nimbus/internal/model"
	"github.com/nimbus-weather/nimbus/internal/view"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast [location]",
	Short: "Show the multi-day forecast",
	Long: `Show the provider's full forecast horizon (typically three days), one row
per day: high/low, representative daytime condition, precipitation, wind,
UV maximum and sun times. A snow column appears only when any day in the
horizon has snowfall.`,
	Example: `  nimbus forecast
  nimbus forecast "Anchorage" --imperial
  nimbus forecast Oslo --format raw`,
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

		rows := view.Forecast(snap, p)
		result := newResult(model.KindReportList, fmt.Sprintf("forecast %s", query), snap, rows, cacheHit, start)
		return emit(cmd.OutOrStdout(), deps, result, snap)
	},
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}
