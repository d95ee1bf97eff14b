package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nimbus-weather/nimbus/internal/model"
	"github.com/nimbus-weather/nimbus/internal/render"
	"github.com/nimbus-weather/nimbus/internal/view"
)

var lineCmd = &cobra.Command{
	Use:   "line [location]",
	Short: "Show a one-line summary for status bars",
	Long: `Print a single line: "<location>: <icon> <temperature> - <condition>".
Intended for status bars, tmux panes and prompts. The line is truncated to
the terminal width when attached to one.`,
	Example: `  nimbus line
  nimbus line Madrid --mode emoji
  nimbus line --mode text --metric`,
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

		logHistory(deps, query, snap, cacheHit)

		line := render.FitLine(view.OneLine(snap, p), render.TerminalWidth())
		result := newResult(model.KindOneLine, fmt.Sprintf("line %s", query), snap, line, cacheHit, start)
		return emit(cmd.OutOrStdout(), deps, result, snap)
	},
}

func init() {
	rootCmd.AddCommand(lineCmd)
}
