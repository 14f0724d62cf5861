package labels

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"shipbatch/infrastructure/store"
)

// ShipmentLabelPDFQueryHandler serves a printable label for one shipment.
func ShipmentLabelPDFQueryHandler(st *store.ShipmentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		s, ok := st.Get(id)
		if !ok {
			http.Error(w, "shipment not found", http.StatusNotFound)
			return
		}
		pdfBytes, err := renderShipmentLabelPDF(s, time.Now())
		if err != nil {
			slog.Error("render shipment label failed", slog.String("shipment_id", id), slog.Any("err", err))
			http.Error(w, "failed to render label", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "inline; filename=shipment-label-"+id+".pdf")
		if _, err := w.Write(pdfBytes); err != nil {
			slog.Error("write shipment label failed", slog.String("shipment_id", id), slog.Any("err", err))
		}
	}
}
