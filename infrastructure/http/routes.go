package http

import (
	exportspage "shipbatch/frontend/exports"
	"shipbatch/frontend/labels"
	shipmentspage "shipbatch/frontend/shipments"
)

// RegisterShipmentRoutes registers the batch entry screen, its commands, and
// the export surfaces.
func (s *Server) RegisterShipmentRoutes() {
	s.router.Get("/shipments", shipmentspage.ShipmentsPageQueryHandler(s.Store))
	s.router.Post("/shipments", shipmentspage.CreateShipmentCommandHandler(s.Store))
	s.router.Post("/shipments/clear", shipmentspage.ClearShipmentsCommandHandler(s.Store))
	s.router.Post("/shipments/{id}/update", shipmentspage.UpdateShipmentCommandHandler(s.Store))
	s.router.Post("/shipments/{id}/delete", shipmentspage.DeleteShipmentCommandHandler(s.Store))

	s.router.Get("/shipments/{id}/label.pdf", labels.ShipmentLabelPDFQueryHandler(s.Store))
	s.router.Get("/exports/shipments.csv", exportspage.ShipmentsExportCSVHandler(s.Store))
}
