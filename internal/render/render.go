// Package render converts Result values into terminal output. Table output
// goes through tablewriter; raw output swaps each formatted field for its
// typed value. Tier selection and projection for the current-conditions view
// also live here.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"github.com/nimbus-weather/nimbus/internal/model"
	"github.com/nimbus-weather/nimbus/internal/view"
)

// Format constants matching --format flag values.
const (
	FormatTable = "table"
	FormatRaw   = "raw"
	FormatJSON  = "json"
)

// ─── Tiers ────────────────────────────────────────────────────────────────────

// Tier is a verbosity level for the current-conditions view, ordered by
// information density.
type Tier int

const (
	TierFull Tier = iota
	TierCompact
	TierMinimal
	TierOneLine
)

// Width breakpoints for automatic tier selection.
const (
	widthFull    = 100
	widthCompact = 80
)

func (t Tier) String() string {
	switch t {
	case TierCompact:
		return "compact"
	case TierMinimal:
		return "minimal"
	case TierOneLine:
		return "oneline"
	default:
		return "full"
	}
}

// ParseTier parses a --tier flag value.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return TierFull, nil
	case "compact":
		return TierCompact, nil
	case "minimal":
		return TierMinimal, nil
	case "oneline":
		return TierOneLine, nil
	}
	return TierFull, fmt.Errorf("unknown tier %q (full|compact|minimal|oneline)", s)
}

// SelectTier resolves the tier for this invocation. An explicit flag pins
// the tier; otherwise terminal width decides between full, compact and
// minimal. Oneline is never auto-selected by width — it is only reachable
// via an explicit flag or the line command.
func SelectTier(explicit string, width int) (Tier, error) {
	if explicit != "" {
		return ParseTier(explicit)
	}
	switch {
	case width >= widthFull || width <= 0:
		return TierFull, nil
	case width >= widthCompact:
		return TierCompact, nil
	default:
		return TierMinimal, nil
	}
}

// TerminalWidth returns the width of the attached terminal, or 0 when
// stdout is not a terminal (pipes get the full column set).
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// compactDrops is the column set removed at the compact tier; minimalDrops
// extends it. Projection applies to the Current view only.
var compactDrops = map[string]bool{
	view.LabelPressure:   true,
	view.LabelVisibility: true,
	view.LabelClouds:     true,
	view.LabelUpdated:    true,
}

var minimalDrops = map[string]bool{
	view.LabelUV:        true,
	view.LabelHumidity:  true,
	view.LabelFeelsLike: true,
}

// Project filters a current-conditions report down to the tier's column set.
func Project(rep model.Report, tier Tier) model.Report {
	if tier == TierFull {
		return rep
	}
	out := model.Report{Title: rep.Title}
	for _, f := range rep.Fields {
		if compactDrops[f.Label] {
			continue
		}
		if tier >= TierMinimal && minimalDrops[f.Label] {
			continue
		}
		out.Fields = append(out.Fields, f)
	}
	return out
}

// ─── Dispatch ─────────────────────────────────────────────────────────────────

// Render writes result to w in the given format. The full-provider-JSON
// format is handled at the command layer (it bypasses the Result envelope
// entirely); everything else lands here.
func Render(w io.Writer, result *model.Result, format string) error {
	if format == FormatRaw {
		return renderRaw(w, result)
	}
	switch result.Kind {
	case model.KindOneLine:
		s, _ := result.Data.(string)
		_, err := fmt.Fprintln(w, s)
		return err
	case model.KindReportList:
		rows, ok := result.Data.([]model.Report)
		if !ok {
			return fmt.Errorf("unexpected data type for report_list")
		}
		return renderRows(w, rows)
	default:
		rep, ok := result.Data.(model.Report)
		if !ok {
			return fmt.Errorf("unexpected data type for report")
		}
		return renderReport(w, rep)
	}
}

// ─── Table ────────────────────────────────────────────────────────────────────

// renderReport renders a single report as a two-column table.
func renderReport(w io.Writer, rep model.Report) error {
	if rep.Title != "" {
		fmt.Fprintln(w, rep.Title)
	}
	tw := tablewriter.NewWriter(w)
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAutoWrapText(false)
	for _, f := range rep.Fields {
		tw.Append([]string{f.Label, f.Value})
	}
	tw.Render()
	return nil
}

// renderRows renders a report list as one table: headers from the first
// row's labels, one table row per report.
func renderRows(w io.Writer, rows []model.Report) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "no data")
		return err
	}
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(rows[0].Labels())
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAutoWrapText(false)
	for _, rep := range rows {
		cells := make([]string, len(rep.Fields))
		for i, f := range rep.Fields {
			cells[i] = f.Value
		}
		tw.Append(cells)
	}
	tw.Render()
	return nil
}

// ─── Raw ──────────────────────────────────────────────────────────────────────

// rawField is the machine-readable projection of a Field: the typed value
// when the builder recorded one, the display string otherwise. Raw output
// never carries icons or styling.
type rawField struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

func rawReport(rep model.Report) []rawField {
	out := make([]rawField, len(rep.Fields))
	for i, f := range rep.Fields {
		v := any(f.Value)
		if f.Raw != nil {
			v = f.Raw
		}
		out[i] = rawField{Label: f.Label, Value: v}
	}
	return out
}

// renderRaw re-encodes the result envelope with typed field values.
func renderRaw(w io.Writer, result *model.Result) error {
	out := *result
	switch data := result.Data.(type) {
	case model.Report:
		out.Data = rawReport(data)
	case []model.Report:
		rows := make([][]rawField, len(data))
		for i, rep := range data {
			rows[i] = rawReport(rep)
		}
		out.Data = rows
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ─── One-line helpers ─────────────────────────────────────────────────────────

// FitLine truncates a one-line summary to the terminal width, ellipsising
// wide (glyph/emoji) content correctly. width <= 0 leaves s untouched.
func FitLine(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
