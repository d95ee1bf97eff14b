// Package chart renders a horizontal-bar ASCII chart of a temperature
// series — one bar per 3-hourly reading. Bars are scaled over the series
// range, with a zero baseline when the range crosses zero, so sub-freezing
// temperatures read correctly.
package chart

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Point is one labelled value, e.g. {"09:00", 18.0}.
type Point struct {
	Label string
	Value float64
}

// Options controls bar chart rendering.
type Options struct {
	// Width is the total character width available. If 0, 80 is used.
	Width int
	// Unit is appended to the value labels, e.g. "°C".
	Unit string
}

// Bar renders the chart to w.
//
// Output example:
//
//	Paris, France — today
//	00:00   5°C  ██████
//	03:00   4°C  █████
//	12:00  11°C  ████████████████
func Bar(w io.Writer, title string, points []Point, opts Options) error {
	if len(points) == 0 {
		return fmt.Errorf("chart: no points to render")
	}
	totalWidth := opts.Width
	if totalWidth <= 0 {
		totalWidth = 80
	}

	minVal, maxVal := points[0].Value, points[0].Value
	for _, p := range points[1:] {
		minVal = math.Min(minVal, p.Value)
		maxVal = math.Max(maxVal, p.Value)
	}
	valRange := maxVal - minVal
	if valRange == 0 {
		valRange = 1 // flat series: avoid divide-by-zero
	}

	labelWidth, valWidth := 0, 0
	for _, p := range points {
		if len(p.Label) > labelWidth {
			labelWidth = len(p.Label)
		}
		if l := len(valueLabel(p.Value, opts.Unit)); l > valWidth {
			valWidth = l
		}
	}

	barAreaWidth := totalWidth - labelWidth - valWidth - 4
	if barAreaWidth < 4 {
		barAreaWidth = 4
	}

	// Zero baseline only matters when the series crosses zero.
	bipolar := minVal < 0 && maxVal > 0
	zeroPos := 0
	if bipolar {
		zeroPos = int(math.Round((-minVal / valRange) * float64(barAreaWidth-1)))
	}

	if title != "" {
		fmt.Fprintln(w, title)
	}
	for _, p := range points {
		var bar string
		if bipolar {
			bar = biBar(p.Value, minVal, valRange, barAreaWidth, zeroPos)
		} else {
			n := int(math.Round((p.Value - minVal) / valRange * float64(barAreaWidth)))
			if n < 1 {
				n = 1 // minimum 1 block so every bar is visible
			}
			bar = strings.Repeat("█", n)
		}
		fmt.Fprintf(w, "%-*s  %*s  %s\n",
			labelWidth, p.Label, valWidth, valueLabel(p.Value, opts.Unit), bar)
	}
	return nil
}

// biBar builds a bar around the zero column: negatives extend left of it,
// positives right.
func biBar(val, minVal, valRange float64, barAreaWidth, zeroPos int) string {
	pos := int(math.Round((val - minVal) / valRange * float64(barAreaWidth-1)))
	cells := make([]rune, barAreaWidth)
	for i := range cells {
		cells[i] = ' '
	}
	cells[zeroPos] = '│'
	if pos >= zeroPos {
		for i := zeroPos + 1; i <= pos && i < barAreaWidth; i++ {
			cells[i] = '█'
		}
	} else {
		for i := pos; i < zeroPos; i++ {
			cells[i] = '█'
		}
	}
	return string(cells)
}

func valueLabel(v float64, unit string) string {
	return fmt.Sprintf("%.0f%s", v, unit)
}
