package labels

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"

	"shipbatch/models"
)

// renderShipmentLabelPDF produces a one-page A5 landscape label carrying the
// reference, dimensions, weight, printed date, and a Code128 barcode of the
// shipment id.
func renderShipmentLabelPDF(s models.Shipment, printedAt time.Time) ([]byte, error) {
	barcodePNG, err := renderCode128PNG(s.ID, 1200, 240)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A5", "")
	pdf.SetTitle("Shipment Label", false)
	pdf.AddPage()

	reference := s.Reference
	if reference == "" {
		reference = "No reference"
	}

	pdf.SetFont("Helvetica", "B", 32)
	pdf.CellFormat(0, 16, reference, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 9, "Dimensions: "+s.Dims(), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 9, "Weight: "+s.WeightLabel(), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 9, "Printed: "+printedAt.Format("02/01/2006"), "", 1, "C", false, 0, "")

	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	imageName := "shipment-barcode-" + s.ID
	pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))
	pageW, _ := pdf.GetPageSize()
	imgW := 150.0
	imgH := 30.0
	x := (pageW - imgW) / 2
	y := 90.0
	pdf.ImageOptions(imageName, x, y, imgW, imgH, false, opt, 0, "")

	pdf.SetY(y + imgH + 4)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, s.ID, "", 1, "C", false, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, err
	}
	// gofpdf chokes on paletted PNGs, so normalize first.
	bounds := scaled.Bounds()
	normalized := image.NewNRGBA(bounds)
	draw.Draw(normalized, bounds, scaled, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, normalized); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
