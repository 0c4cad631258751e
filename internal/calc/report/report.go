package report

import (
	"fmt"
	"io"
	"time"

	"Buildcalc/internal/calc/quantity"
	"Buildcalc/internal/format"

	"github.com/phpdave11/gofpdf"
)

const defaultTitle = "Calculation Report"

type Input struct {
	Project  string             `json:"project"`
	Author   string             `json:"author"`
	Title    string             `json:"title"`
	Notes    string             `json:"notes"`
	Locale   string             `json:"locale"`
	Decimals int                `json:"decimals"`
	Sections []quantity.Section `json:"sections"`
}

// Render writes an A4 report with one two-column table per section.
func Render(w io.Writer, in Input, now time.Time) error {
	if in.Title == "" {
		in.Title = defaultTitle
	}
	if in.Decimals <= 0 {
		in.Decimals = 2
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(in.Title, true)
	pdf.SetAuthor(in.Author, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(in.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", in.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", in.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(10)

	for _, s := range in.Sections {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr(s.Heading))
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
		for _, l := range s.Lines {
			pdf.CellFormat(110, 7, tr(l.Label), "1", 0, "L", false, 0, "")
			value := format.Number(l.Quantity, in.Decimals, in.Locale)
			if l.Unit != "" {
				value += " " + l.Unit
			}
			pdf.CellFormat(70, 7, tr(value), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	if in.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(in.Notes), "", "L", false)
	}
	return pdf.Output(w)
}
