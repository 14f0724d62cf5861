package exports

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"shipbatch/infrastructure/store"
)

// ShipmentsExportCSVHandler streams the current batch as a CSV attachment.
// An empty batch is reported back to the shipments page instead of producing
// an empty file.
func ShipmentsExportCSVHandler(st *store.ShipmentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shipments := st.List()
		if len(shipments) == 0 {
			http.Redirect(w, r, "/shipments?error="+url.QueryEscape("No shipments to export"), http.StatusSeeOther)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename="+ExportFilename(time.Now()))
		if err := WriteShipmentsCSV(w, shipments); err != nil {
			// Headers are already out, so the failure can only be logged.
			slog.Error("write shipments csv failed", slog.Any("err", err))
		}
	}
}
