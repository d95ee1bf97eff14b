package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nimbus-weather/nimbus/internal/config"
	"github.com/nimbus-weather/nimbus/internal/render"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage nimbus configuration",
	Long:  `Read and write nimbus configuration stored in config.json.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a template config.json in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultConfigFile
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config.json already exists at %s (delete it first to re-initialise)", path)
		}
		if err := config.WriteFile(path, config.Template()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", path)
		fmt.Fprintln(cmd.OutOrStdout(), "  Set units, lang or mode there to make them the default.")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		cfg := deps.Config

		units := "by location"
		switch {
		case cfg.Imperial:
			units = "imperial"
		case cfg.Metric:
			units = "metric"
		}
		src := "(not found)"
		if cfg.ConfigPath != "" {
			src = cfg.ConfigPath
		}
		tier := cfg.Tier
		if tier == "" {
			tier = "by terminal width"
		}

		if cfg.Format == render.FormatJSON {
			type configOut struct {
				Units      string  `json:"units"`
				Mode       string  `json:"mode"`
				Format     string  `json:"format"`
				Tier       string  `json:"tier"`
				Lang       string  `json:"lang"`
				Timeout    string  `json:"timeout"`
				Rate       float64 `json:"rate"`
				CacheDir   string  `json:"cache_dir"`
				DBPath     string  `json:"db_path"`
				ConfigFile string  `json:"config_file"`
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(configOut{
				Units:      units,
				Mode:       cfg.Mode,
				Format:     cfg.Format,
				Tier:       tier,
				Lang:       cfg.Lang,
				Timeout:    cfg.Timeout.String(),
				Rate:       cfg.Rate,
				CacheDir:   cfg.CacheDir,
				DBPath:     cfg.DBPath,
				ConfigFile: src,
			})
		}

		printKVTable(cmd.OutOrStdout(), [][]string{
			{"units", units},
			{"mode", cfg.Mode},
			{"format", cfg.Format},
			{"tier", tier},
			{"lang", orDash(cfg.Lang)},
			{"timeout", cfg.Timeout.String()},
			{"rate", fmt.Sprintf("%.1f req/s", cfg.Rate)},
			{"cache_dir", orDash(cfg.CacheDir)},
			{"db_path", cfg.DBPath},
			{"config_file", src},
		})
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}

// printKVTable renders a two-column key/value table using aligned columns.
func printKVTable(w io.Writer, rows [][]string) {
	maxKey := 0
	for _, r := range rows {
		if len(r[0]) > maxKey {
			maxKey = len(r[0])
		}
	}
	for _, r := range rows {
		padding := strings.Repeat(" ", maxKey-len(r[0]))
		fmt.Fprintf(w, "  %s%s  %s\n", r[0], padding, r[1])
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
