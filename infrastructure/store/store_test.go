package store

import (
	"testing"

	"shipbatch/infrastructure/ident"
	"shipbatch/models"
)

func newTestStore() *ShipmentStore {
	return NewShipmentStore(ident.NewSequenceGenerator("ship"))
}

func TestAddMintsIDAndAppends(t *testing.T) {
	st := newTestStore()

	got := st.Add(models.Shipment{Length: 12, Width: 8, Height: 6, Weight: 5.5, Reference: "INV-12345"})
	if got.ID != "ship-1" {
		t.Fatalf("expected id ship-1, got %q", got.ID)
	}
	if st.Len() != 1 {
		t.Fatalf("expected 1 shipment, got %d", st.Len())
	}

	stored, ok := st.Get("ship-1")
	if !ok {
		t.Fatalf("expected to find ship-1")
	}
	if stored != got {
		t.Fatalf("stored record %+v differs from returned %+v", stored, got)
	}
	if stored.Weight != 5.5 {
		t.Fatalf("expected weight 5.5 unrounded, got %v", stored.Weight)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	st := newTestStore()
	st.Add(models.Shipment{Length: 1, Width: 1, Height: 1, Weight: 1, Reference: "first"})
	st.Add(models.Shipment{Length: 2, Width: 2, Height: 2, Weight: 2, Reference: "second"})
	st.Add(models.Shipment{Length: 3, Width: 3, Height: 3, Weight: 3, Reference: "third"})

	list := st.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 shipments, got %d", len(list))
	}
	for i, want := range []string{"first", "second", "third"} {
		if list[i].Reference != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, list[i].Reference)
		}
	}
}

func TestListReturnsSnapshotCopy(t *testing.T) {
	st := newTestStore()
	st.Add(models.Shipment{Length: 1, Width: 1, Height: 1, Weight: 1})

	list := st.List()
	list[0].Reference = "mutated"

	stored, _ := st.Get("ship-1")
	if stored.Reference == "mutated" {
		t.Fatalf("mutating the snapshot must not touch the store")
	}
}

func TestUpdatePreservesLengthAndPosition(t *testing.T) {
	st := newTestStore()
	st.Add(models.Shipment{Length: 1, Width: 1, Height: 1, Weight: 1, Reference: "a"})
	st.Add(models.Shipment{Length: 2, Width: 2, Height: 2, Weight: 2, Reference: "b"})
	st.Add(models.Shipment{Length: 3, Width: 3, Height: 3, Weight: 3, Reference: "c"})

	ok := st.Update("ship-2", models.Shipment{Length: 20, Width: 21, Height: 22, Weight: 2.5, Reference: "b2"})
	if !ok {
		t.Fatalf("expected update to succeed")
	}
	if st.Len() != 3 {
		t.Fatalf("update must not change length, got %d", st.Len())
	}

	list := st.List()
	if list[1].ID != "ship-2" || list[1].Reference != "b2" || list[1].Length != 20 {
		t.Fatalf("expected updated record in place, got %+v", list[1])
	}
	if list[0].Reference != "a" || list[2].Reference != "c" {
		t.Fatalf("neighbours must be untouched, got %+v", list)
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	st := newTestStore()
	st.Add(models.Shipment{Length: 1, Width: 1, Height: 1, Weight: 1, Reference: "a"})

	if st.Update("ship-99", models.Shipment{Length: 9, Width: 9, Height: 9, Weight: 9}) {
		t.Fatalf("expected update of unknown id to report false")
	}

	stored, _ := st.Get("ship-1")
	if stored.Reference != "a" || st.Len() != 1 {
		t.Fatalf("store must be unchanged, got %+v", stored)
	}
}

func TestRemove(t *testing.T) {
	st := newTestStore()
	st.Add(models.Shipment{Length: 1, Width: 1, Height: 1, Weight: 1, Reference: "a"})
	st.Add(models.Shipment{Length: 2, Width: 2, Height: 2, Weight: 2, Reference: "b"})

	if !st.Remove("ship-1") {
		t.Fatalf("expected remove to succeed")
	}
	if st.Len() != 1 {
		t.Fatalf("expected 1 shipment left, got %d", st.Len())
	}
	if _, ok := st.Get("ship-1"); ok {
		t.Fatalf("removed shipment must be gone")
	}

	if st.Remove("ship-1") {
		t.Fatalf("removing an absent id must be a no-op")
	}
	if st.Len() != 1 {
		t.Fatalf("no-op remove must not change length, got %d", st.Len())
	}
}

func TestClear(t *testing.T) {
	st := newTestStore()
	st.Add(models.Shipment{Length: 1, Width: 1, Height: 1, Weight: 1})
	st.Add(models.Shipment{Length: 2, Width: 2, Height: 2, Weight: 2})

	st.Clear()
	if st.Len() != 0 {
		t.Fatalf("expected empty store, got %d", st.Len())
	}
	if len(st.List()) != 0 {
		t.Fatalf("expected empty snapshot")
	}

	// Clear on an already empty store stays empty.
	st.Clear()
	if st.Len() != 0 {
		t.Fatalf("expected empty store after second clear, got %d", st.Len())
	}
}

func TestAddAfterClearMintsFreshIDs(t *testing.T) {
	st := newTestStore()
	st.Add(models.Shipment{Length: 1, Width: 1, Height: 1, Weight: 1})
	st.Clear()

	got := st.Add(models.Shipment{Length: 2, Width: 2, Height: 2, Weight: 2})
	if got.ID != "ship-2" {
		t.Fatalf("generator must keep advancing, got %q", got.ID)
	}
}
