package exports

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"shipbatch/models"
)

// Column order and header labels are the external interface of the export;
// batch submission tooling downstream keys on these names.
var csvHeader = []string{"length_in", "width_in", "height_in", "weight_lb", "reference"}

const filenamePrefix = "shipments"

// WriteShipmentsCSV writes one header row plus one row per shipment, in list
// order. encoding/csv handles quoting of references containing delimiters,
// quotes, or newlines. The function never consults the store; it formats
// exactly the slice it is given.
func WriteShipmentsCSV(w io.Writer, shipments []models.Shipment) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range shipments {
		record := []string{
			strconv.FormatInt(s.Length, 10),
			strconv.FormatInt(s.Width, 10),
			strconv.FormatInt(s.Height, 10),
			strconv.FormatFloat(s.Weight, 'f', -1, 64),
			s.Reference,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportFilename returns the attachment name for an export produced on the
// given day, e.g. "shipments_2026-08-27.csv".
func ExportFilename(day time.Time) string {
	return filenamePrefix + "_" + day.Format("2006-01-02") + ".csv"
}
