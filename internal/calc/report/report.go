package report

import (
	"fmt"
	"io"
	"time"

	"Vodostok/internal/calc/drainage"

	"github.com/phpdave11/gofpdf"
)

type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

const defaultTitle = "Roof Drainage Calculation"

// Render writes an A4 report. Core PDF fonts have no Cyrillic, so every label
// is Latin, materials use their Latin titles and user text is transliterated.
func Render(w io.Writer, meta Meta, in drainage.Input, res drainage.Result, now time.Time) error {
	if meta.Title == "" {
		meta.Title = defaultTitle
	}
	mat, _ := drainage.Lookup(res.MaterialID)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(Transliterate(s)) }

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, text(meta.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", text(meta.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", text(meta.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Input data")
	rows := [][2]string{
		{"Roof area", fmt.Sprintf("%.2f m2", in.RoofAreaM2)},
		{"Rainfall intensity", fmt.Sprintf("%.1f mm/h", in.RainfallMMH)},
		{"Drain run length", fmt.Sprintf("%.2f m", in.DrainLengthM)},
		{"Material", mat.Title},
	}
	if in.Extended() {
		rows = append(rows,
			[2]string{"House (L x W x H)", fmt.Sprintf("%.2f x %.2f x %.2f m", in.HouseLengthM, in.HouseWidthM, in.HouseHeightM)},
			[2]string{"Downpipes", fmt.Sprintf("%d", res.DrainCount)},
		)
	}
	keyValues(pdf, rows)

	section(pdf, "Sizing")
	velocityMark := "within 0.7-4.0 m/s"
	if !res.VelocityOK {
		velocityMark = "OUTSIDE 0.7-4.0 m/s"
	}
	keyValues(pdf, [][2]string{
		{"Flow rate", fmt.Sprintf("%.3f", res.FlowRate)},
		{"Pipe diameter", fmt.Sprintf("%d mm", res.DiameterMM)},
		{"Slope", fmt.Sprintf("%.1f mm/m", res.SlopeMMPerM)},
		{"Roughness", fmt.Sprintf("%.3f", res.Roughness)},
		{"Flow velocity", fmt.Sprintf("%.2f m/s (%s)", res.VelocityMS, velocityMark)},
		{"Capacity", fmt.Sprintf("%.2f m3/h", res.CapacityM3H)},
	})

	if len(res.Materials) > 0 {
		section(pdf, "Materials")
		billTable(pdf, res)
	}

	if meta.Notes != "" {
		section(pdf, "Notes")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, text(meta.Notes), "", "L", false)
	}

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
}

func keyValues(pdf *gofpdf.Fpdf, rows [][2]string) {
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.CellFormat(60, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}
}

func billTable(pdf *gofpdf.Fpdf, res drainage.Result) {
	widths := []float64{70, 25, 15, 35, 35}
	headers := []string{"Item", "Qty", "Unit", "Price, RUB", "Total, RUB"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 240, 250)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range res.Materials {
		name := drainage.ComponentTitle(item)
		if item.Kind == drainage.ComponentPipe {
			name = fmt.Sprintf("%s D%d mm", name, res.DiameterMM)
		}
		unit := "pcs"
		if item.Unit == drainage.UnitMetre {
			unit = "m"
		}
		pdf.CellFormat(widths[0], 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%.0f", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, unit, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.2f", item.TotalPrice), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 7, fmt.Sprintf("%.2f", res.TotalCost), "1", 1, "R", false, 0, "")
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 7, "Total with 10% reserve", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 7, fmt.Sprintf("%.2f", res.TotalWithReserve), "1", 1, "R", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Prices are per unit. Installation is charged separately.", "", "L", false)
}
