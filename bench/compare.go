package bench

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

// Result is one row of the benchmark comparison table.
type Result struct {
	Operation  string
	Framework  string
	MeanUS     float64
	MedianUS   float64
	StdDevUS   float64
	Iterations int
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// ComparisonTable renders the collected results as a bordered table.
func ComparisonTable(results []Result) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Operation", "Framework", "Mean (µs)", "Median (µs)", "StdDev (µs)", "Iterations")

	for _, r := range results {
		t.Row(
			r.Operation,
			r.Framework,
			humanize.CommafWithDigits(r.MeanUS, 3),
			humanize.CommafWithDigits(r.MedianUS, 3),
			humanize.CommafWithDigits(r.StdDevUS, 3),
			humanize.Comma(int64(r.Iterations)),
		)
	}
	return t.Render()
}

// SpeedupAnalysis reports, per operation, how every framework's mean time
// relates to the named baseline framework. Operations without a baseline row
// are skipped.
func SpeedupAnalysis(results []Result, baseline string) string {
	var order []string
	byOperation := make(map[string][]Result)
	for _, r := range results {
		if _, seen := byOperation[r.Operation]; !seen {
			order = append(order, r.Operation)
		}
		byOperation[r.Operation] = append(byOperation[r.Operation], r)
	}

	var b strings.Builder
	for _, op := range order {
		rows := byOperation[op]

		var base *Result
		for i := range rows {
			if rows[i].Framework == baseline {
				base = &rows[i]
				break
			}
		}
		if base == nil || base.MeanUS == 0 {
			continue
		}

		fmt.Fprintf(&b, "%s:\n", op)
		for _, r := range rows {
			if r.Framework == baseline {
				continue
			}
			speedup := r.MeanUS / base.MeanUS
			verdict := "faster"
			switch {
			case speedup > 1:
				verdict = "slower"
			case speedup == 1:
				verdict = "as fast"
			}
			fmt.Fprintf(&b, "  %s vs %s: %.2fx %s\n", r.Framework, baseline, speedup, verdict)
		}
	}
	return b.String()
}
