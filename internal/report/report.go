// internal/report/report.go
// Package report renders benchmark records to the console and persists them
// as CSV.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"

	"github.com/mwiater/cipherbench/internal/bench"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Padding(0, 1)
	passMarker  = color.New(color.FgGreen).SprintFunc()
	failMarker  = color.New(color.FgRed).SprintFunc()
)

// csvHeader is the column layout shared by the CSV file and the console table.
var csvHeader = []string{
	"Cipher", "Operation", "Filename", "FileSize(Bytes)", "Runs",
	"MeanTime(ms)", "StdDev(ms)", "Throughput(MB/s)",
}

// recordRow formats one record using the fixed report precision: six decimal
// places for times, two for throughput.
func recordRow(rec bench.Record) []string {
	return []string{
		rec.Cipher,
		string(rec.Operation),
		rec.Filename,
		strconv.Itoa(rec.FileSize),
		strconv.Itoa(rec.Runs),
		fmt.Sprintf("%.6f", rec.MeanMs),
		fmt.Sprintf("%.6f", rec.StdDevMs),
		fmt.Sprintf("%.2f", rec.ThroughputMBps),
	}
}

// Table renders the records as a bordered console table.
func Table(records []bench.Record) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers(csvHeader...)
	for _, rec := range records {
		t.Row(recordRow(rec)...)
	}
	return t.String()
}

// PrintSummary writes the results table and a completion marker to out.
func PrintSummary(out io.Writer, records []bench.Record) {
	fmt.Fprintln(out, Table(records))
	fmt.Fprintf(out, "%s %d records, all round-trip checks passed\n", passMarker("OK"), len(records))
}

// PrintFailure writes the fatal abort message to out.
func PrintFailure(out io.Writer, err error) {
	fmt.Fprintf(out, "%s %v\n", failMarker("FAIL"), err)
}
