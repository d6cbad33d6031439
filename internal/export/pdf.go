package export

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// PDFMIME is the content type for PDF downloads.
const PDFMIME = "application/pdf"

// PDF renders a landscape table of the record set: a title line, a
// shaded header row, then one row per record. Columns share the printable
// width evenly; long cell values are truncated to fit rather than
// wrapped, matching the "flat table snapshot" nature of these reports.
func PDF(title string, headers []string, rows [][]string) (*bytes.Buffer, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(headers))

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(240, 240, 240)
	for _, h := range headers {
		pdf.CellFormat(colW, 7, truncate(pdf, h, colW), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range rows {
		for i := 0; i < len(headers); i++ {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			pdf.CellFormat(colW, 6, truncate(pdf, v, colW), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

// truncate shortens a cell value until it fits the column width.
func truncate(pdf *fpdf.Fpdf, s string, colW float64) string {
	const pad = 2 // cell inner padding
	for len(s) > 1 && pdf.GetStringWidth(s) > colW-pad {
		s = s[:len(s)-1]
	}
	return s
}
