package records

import (
	"context"
	"testing"
	"time"

	"packsight/internal/models"
)

func TestMemStoreListsNewestFirst(t *testing.T) {
	s := NewMemStore()
	base := time.Now()
	for i, tn := range []string{"PKG-1", "PKG-2", "PKG-3"} {
		err := s.Create(context.Background(), models.InspectionRecord{
			ID:             tn,
			TrackingNumber: tn,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	recs, err := s.List(context.Background(), "", 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 || recs[0].TrackingNumber != "PKG-3" || recs[2].TrackingNumber != "PKG-1" {
		t.Errorf("order = %v", recs)
	}
}

func TestMemStoreSearchAndLimit(t *testing.T) {
	s := NewMemStore()
	for _, tn := range []string{"PKG-10", "PKG-11", "BOX-1"} {
		_ = s.Create(context.Background(), models.InspectionRecord{ID: tn, TrackingNumber: tn, CreatedAt: time.Now()})
	}
	recs, err := s.List(context.Background(), "pkg", 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Errorf("search matched %d rows", len(recs))
	}
	recs, _ = s.List(context.Background(), "", 1)
	if len(recs) != 1 {
		t.Errorf("limit ignored, got %d rows", len(recs))
	}
}
