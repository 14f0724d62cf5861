package shipments

import "shipbatch/models"

// Draft mirrors the form fields as raw strings before validation.
type Draft struct {
	Length    string
	Width     string
	Height    string
	Weight    string
	Reference string
}

type PageData struct {
	Shipments []models.Shipment
	Draft     Draft
	EditID    string
	Message   string
	IsError   bool
}

func draftFromShipment(s models.Shipment) Draft {
	return Draft{
		Length:    formatInt(s.Length),
		Width:     formatInt(s.Width),
		Height:    formatInt(s.Height),
		Weight:    formatWeight(s.Weight),
		Reference: s.Reference,
	}
}
