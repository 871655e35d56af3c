// Package report persists lead-scan results. The format is chosen from the
// output filename: .json keeps the full source→leads map (plus any errors),
// .csv flattens to one row per lead, .xlsx writes a styled workbook for
// people who live in spreadsheets.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/thisisdarkstar/lead-toolkit/internal/lead"
)

var csvHeader = []string{"source_domain", "domain", "url", "category", "copyright", "status", "lead_type"}

// Write persists the result to path, dispatching on extension.
func Write(path string, res lead.Result) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return WriteJSON(path, res)
	case ".csv":
		return WriteCSV(path, res)
	case ".xlsx":
		return WriteXLSX(path, res)
	default:
		return fmt.Errorf("unsupported output format %q (want .json, .csv or .xlsx)", filepath.Ext(path))
	}
}

// WriteJSON writes the result as indented JSON. When no domain failed the
// file holds the bare source→leads map, matching the files downstream
// tooling already parses.
func WriteJSON(path string, res lead.Result) error {
	var payload interface{} = res.Data
	if len(res.Errors) > 0 {
		payload = res
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

// WriteCSV flattens the result to one row per lead.
func WriteCSV(path string, res lead.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, source := range sortedSources(res.Data) {
		for _, l := range res.Data[source] {
			if err := w.Write([]string{source, l.Domain, l.URL, l.Category, l.CopyrightYear, l.Status, l.LeadType}); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

// WriteXLSX writes a "Leads" sheet with a bold header row.
func WriteXLSX(path string, res lead.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Leads"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := make([]interface{}, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCol, _ := excelize.CoordinatesToCellName(len(csvHeader), 1)
		f.SetCellStyle(sheet, "A1", lastCol, boldStyle)
	}

	row := 2
	for _, source := range sortedSources(res.Data) {
		for _, l := range res.Data[source] {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			values := []interface{}{source, l.Domain, l.URL, l.Category, l.CopyrightYear, l.Status, l.LeadType}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return err
			}
			row++
		}
	}

	return f.SaveAs(path)
}

func sortedSources(data lead.Report) []string {
	sources := make([]string, 0, len(data))
	for s := range data {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	return sources
}
