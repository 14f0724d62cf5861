package shipments

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"shipbatch/infrastructure/store"
)

// ShipmentsPageQueryHandler renders the batch entry screen. An `edit` query
// parameter pre-populates the form from the targeted shipment; a missing
// target drops back to the plain page with an error banner.
func ShipmentsPageQueryHandler(st *store.ShipmentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := PageData{
			Shipments: st.List(),
			Message:   r.URL.Query().Get("status"),
		}
		if msg := r.URL.Query().Get("error"); msg != "" {
			data.Message = msg
			data.IsError = true
		}

		if editID := r.URL.Query().Get("edit"); editID != "" {
			s, ok := st.Get(editID)
			if !ok {
				redirectError(w, r, "Shipment no longer exists")
				return
			}
			data.EditID = editID
			data.Draft = draftFromShipment(s)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := ShipmentsPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render shipments page", http.StatusInternalServerError)
			return
		}
	}
}

// CreateShipmentCommandHandler appends a new shipment from the form draft.
func CreateShipmentCommandHandler(st *store.ShipmentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectError(w, r, "invalid form")
			return
		}
		s, err := ParseDraft(draftFromForm(r))
		if err != nil {
			redirectError(w, r, err.Error())
			return
		}
		st.Add(s)
		redirectStatus(w, r, "Shipment added")
	}
}

// UpdateShipmentCommandHandler replaces the targeted shipment's values in
// place and leaves edit mode.
func UpdateShipmentCommandHandler(st *store.ShipmentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := r.ParseForm(); err != nil {
			redirectError(w, r, "invalid form")
			return
		}
		s, err := ParseDraft(draftFromForm(r))
		if err != nil {
			// Stay in edit mode so the user can correct the draft.
			http.Redirect(w, r, "/shipments?edit="+url.QueryEscape(id)+"&error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		if !st.Update(id, s) {
			redirectError(w, r, "Shipment no longer exists")
			return
		}
		redirectStatus(w, r, "Shipment updated")
	}
}

// DeleteShipmentCommandHandler removes one shipment. Deleting the record
// currently being edited lands on the plain page, which clears edit mode.
func DeleteShipmentCommandHandler(st *store.ShipmentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !st.Remove(chi.URLParam(r, "id")) {
			redirectError(w, r, "Shipment no longer exists")
			return
		}
		redirectStatus(w, r, "Shipment deleted")
	}
}

// ClearShipmentsCommandHandler empties the whole batch.
func ClearShipmentsCommandHandler(st *store.ShipmentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st.Clear()
		redirectStatus(w, r, "Shipments cleared")
	}
}

func draftFromForm(r *http.Request) Draft {
	return Draft{
		Length:    r.FormValue("length"),
		Width:     r.FormValue("width"),
		Height:    r.FormValue("height"),
		Weight:    r.FormValue("weight"),
		Reference: r.FormValue("reference"),
	}
}

func redirectStatus(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/shipments?status="+url.QueryEscape(msg), http.StatusSeeOther)
}

func redirectError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/shipments?error="+url.QueryEscape(msg), http.StatusSeeOther)
}
