package store

import (
	"sync"

	"shipbatch/infrastructure/ident"
	"shipbatch/models"
)

// ShipmentStore holds the working batch in insertion order. The list lives
// only for the process lifetime; insertion order is the export order.
//
// Callers are expected to hand it validated shipments only (all dimensions
// and the weight strictly positive).
type ShipmentStore struct {
	mu        sync.RWMutex
	shipments []models.Shipment
	ids       ident.Generator
}

func NewShipmentStore(ids ident.Generator) *ShipmentStore {
	return &ShipmentStore{ids: ids}
}

// Add appends the shipment under a freshly minted id and returns the stored
// record.
func (st *ShipmentStore) Add(s models.Shipment) models.Shipment {
	st.mu.Lock()
	defer st.mu.Unlock()
	s.ID = st.ids.NewID()
	st.shipments = append(st.shipments, s)
	return s
}

// Update replaces the field values of the shipment with the given id,
// keeping its id and position. It reports false and leaves the list
// untouched when the id is unknown; callers treat that as a stale target.
func (st *ShipmentStore) Update(id string, s models.Shipment) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.shipments {
		if st.shipments[i].ID == id {
			s.ID = id
			st.shipments[i] = s
			return true
		}
	}
	return false
}

// Remove deletes the shipment with the given id, reporting whether anything
// was removed.
func (st *ShipmentStore) Remove(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.shipments {
		if st.shipments[i].ID == id {
			st.shipments = append(st.shipments[:i], st.shipments[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the batch.
func (st *ShipmentStore) Clear() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.shipments = nil
}

// Get returns the shipment with the given id.
func (st *ShipmentStore) Get(id string) (models.Shipment, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for _, s := range st.shipments {
		if s.ID == id {
			return s, true
		}
	}
	return models.Shipment{}, false
}

// List returns an ordered snapshot copy of the batch.
func (st *ShipmentStore) List() []models.Shipment {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]models.Shipment, len(st.shipments))
	copy(out, st.shipments)
	return out
}

// Len returns the number of shipments in the batch.
func (st *ShipmentStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.shipments)
}
