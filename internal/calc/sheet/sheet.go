// Package sheet moves bar bending schedules and result tables in and out of
// xlsx workbooks.
package sheet

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"Buildcalc/internal/calc/barbending"
	"Buildcalc/internal/calc/quantity"

	"github.com/xuri/excelize/v2"
)

var ErrEmptySheet = errors.New("empty sheet")

// Header is the column layout Import expects and ExportSchedule writes.
var Header = []string{"Element", "Bar type", "Diameter (mm)", "Length (mm)", "Quantity", "Bends", "Clear cover (mm)", "Shape"}

type ImportResult struct {
	Count   int               `json:"count"`
	Skipped []int             `json:"skipped,omitempty"` // 1-based sheet rows
	Result  barbending.Result `json:"result"`
}

// Import reads BBS rows from the first sheet, skipping the header row and
// any row whose numeric columns do not parse.
func Import(r io.Reader) (ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return ImportResult{}, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return ImportResult{}, ErrEmptySheet
	}

	var out ImportResult
	var items []barbending.Item
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		it, err := parseRow(rows[i])
		if err != nil {
			out.Skipped = append(out.Skipped, i+1)
			continue
		}
		items = append(items, it)
	}
	out.Count = len(items)
	out.Result, err = barbending.Calculate(barbending.Input{Items: items})
	return out, err
}

func parseRow(row []string) (barbending.Item, error) {
	if len(row) < 5 {
		return barbending.Item{}, fmt.Errorf("bad row")
	}
	dia, err := toFloat(row[2])
	if err != nil {
		return barbending.Item{}, err
	}
	length, err := toFloat(row[3])
	if err != nil {
		return barbending.Item{}, err
	}
	qty, err := strconv.Atoi(strings.TrimSpace(row[4]))
	if err != nil {
		return barbending.Item{}, err
	}
	it := barbending.Item{
		ElementType: strings.TrimSpace(row[0]),
		BarType:     strings.TrimSpace(row[1]),
		Diameter:    dia,
		Length:      length,
		Quantity:    qty,
	}
	if len(row) > 5 && strings.TrimSpace(row[5]) != "" {
		if it.Bends, err = strconv.Atoi(strings.TrimSpace(row[5])); err != nil {
			return barbending.Item{}, err
		}
	}
	if len(row) > 6 && strings.TrimSpace(row[6]) != "" {
		if it.ClearCover, err = toFloat(row[6]); err != nil {
			return barbending.Item{}, err
		}
	}
	if len(row) > 7 {
		it.BendingShape = strings.TrimSpace(row[7])
	}
	return it, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// toFloat accepts the whole cell or nothing: "1,000" and "10mm" fail.
func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ExportSchedule writes the schedule rows with their computed cutting
// length and weight, and a summary sheet.
func ExportSchedule(w io.Writer, res barbending.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Schedule"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	header := make([]interface{}, 0, len(Header)+2)
	for _, h := range Header {
		header = append(header, h)
	}
	header = append(header, "Cutting length (mm)", "Weight")
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, it := range res.Items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{it.ElementType, it.BarType, it.Diameter, it.Length, it.Quantity,
			it.Bends, it.ClearCover, it.BendingShape, it.CuttingLength, it.Weight}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if err := writeSection(f, "Summary", quantity.Section{Heading: "Summary", Lines: barbending.Lines(res)}); err != nil {
		return err
	}
	_, err := f.WriteTo(w)
	return err
}

// ExportSections writes each section to its own sheet as label, quantity,
// unit columns.
func ExportSections(w io.Writer, sections []quantity.Section) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sections {
		name := sheetName(s.Heading, i)
		if i > 0 {
			base := name
			for n := 2; ; n++ {
				if idx, _ := f.GetSheetIndex(name); idx < 0 {
					break
				}
				name = sheetName(fmt.Sprintf("%d %s", n, base), i)
			}
		}
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		}
		if err := writeSection(f, name, s); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}

func writeSection(f *excelize.File, name string, s quantity.Section) error {
	if idx, _ := f.GetSheetIndex(name); idx < 0 {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}
	if err := f.SetSheetRow(name, "A1", &[]interface{}{"Item", "Quantity", "Unit"}); err != nil {
		return err
	}
	for i, l := range s.Lines {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &[]interface{}{l.Label, l.Quantity, l.Unit}); err != nil {
			return err
		}
	}
	return nil
}

// sheetName trims headings to Excel's 31 character limit and strips the
// characters it rejects.
func sheetName(heading string, i int) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, strings.TrimSpace(heading))
	if name == "" {
		name = fmt.Sprintf("Section %d", i+1)
	}
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	return name
}
