package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nimbus-weather/nimbus/internal/chart"
	"github.com/nimbus-weather/nimbus/internal/render"
)

var chartWidth int

var chartCmd = &cobra.Command{
	Use:   "chart [location]",
	Short: "Chart today's 3-hourly temperature as ASCII bars",
	Example: `  nimbus chart
  nimbus chart Helsinki
  nimbus chart Denver --imperial --width 60`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		defer deps.Close()

		query := queryArg(args)
		snap, _, err := loadSnapshot(cmd, deps, query, false)
		if err != nil {
			return err
		}
		p, err := viewParams(deps, snap)
		if err != nil {
			return err
		}

		var points []chart.Point
		for _, h := range snap.Today().Hourly {
			hour := h.Hour()
			if hour < 0 || hour%3 != 0 {
				continue
			}
			points = append(points, chart.Point{
				Label: fmt.Sprintf("%02d:00", hour),
				Value: p.Units.HourTemp(h),
			})
		}

		width := chartWidth
		if width <= 0 {
			width = render.TerminalWidth()
		}
		title := fmt.Sprintf("%s — today", snap.Location.Display())
		return chart.Bar(cmd.OutOrStdout(), title, points, chart.Options{
			Width: width,
			Unit:  p.Units.TempLabel,
		})
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().IntVar(&chartWidth, "width", 0,
		"chart width in characters (default: terminal width)")
}
