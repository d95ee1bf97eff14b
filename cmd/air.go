package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nimbus-weather/nimbus/internal/model"
	"github.com/nimbus-weather/nimbus/internal/view"
)

var airCmd = &cobra.Command{
	Use:   "air [location]",
	Short: "Show air quality: pollutants and US/EU AQI",
	Long: `Show the current air-quality record: PM2.5, PM10, ozone, NO2 and both the
US and EU air-quality indexes, banded at the 50/100/150/200 breakpoints.

When the air-quality service has no data for the location, the fields read
"unavailable" rather than failing the command.`,
	Example: `  nimbus air
  nimbus air Delhi
  nimbus air "Los Angeles" --format raw`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		defer deps.Close()

		start := time.Now()
		query := queryArg(args)

		snap, cacheHit, err := loadSnapshot(cmd, deps, query, true)
		if err != nil {
			return err
		}
		p, err := viewParams(deps, snap)
		if err != nil {
			return err
		}

		rep := view.Air(snap, p)
		result := newResult(model.KindReport, fmt.Sprintf("air %s", query), snap, rep, cacheHit, start)
		return emit(cmd.OutOrStdout(), deps, result, snap)
	},
}

func init() {
	rootCmd.AddCommand(airCmd)
}
