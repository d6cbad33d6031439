package export

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/go-pdf/fpdf"
)

// Label renders a printable barcode label for one asset: item name on
// top, a Code 128 barcode of the asset code, and the code in clear text
// underneath. The page is sized for common 100x50mm label stock.
func Label(assetCode, itemName string) (*bytes.Buffer, error) {
	bc, err := code128.Encode(assetCode)
	if err != nil {
		return nil, fmt.Errorf("export: encoding barcode for %s: %w", assetCode, err)
	}
	scaled, err := barcode.Scale(bc, 600, 160)
	if err != nil {
		return nil, fmt.Errorf("export: scaling barcode: %w", err)
	}

	var img bytes.Buffer
	if err := png.Encode(&img, scaled); err != nil {
		return nil, fmt.Errorf("export: rendering barcode image: %w", err)
	}

	pdf := fpdf.New("L", "mm", "", "")
	pdf.AddPageFormat("L", fpdf.SizeType{Wd: 100, Ht: 50})

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(5, 5)
	pdf.CellFormat(90, 7, itemName, "", 1, "C", false, 0, "")

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(assetCode, opts, &img)
	pdf.ImageOptions(assetCode, 10, 14, 80, 22, false, opts, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(5, 38)
	pdf.CellFormat(90, 6, assetCode, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
