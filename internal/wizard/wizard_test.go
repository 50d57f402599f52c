package wizard

import (
	"errors"
	"testing"

	"packsight/internal/capture"
)

func TestStartRequiresTrackingNumber(t *testing.T) {
	d := NewDraft()
	if err := d.Start("   "); !errors.Is(err, ErrTrackingRequired) {
		t.Fatalf("want ErrTrackingRequired, got %v", err)
	}
	if d.Step != StepParcelInfo {
		t.Errorf("step advanced to %s on empty tracking", d.Step)
	}

	if err := d.Start("PKG-42"); err != nil {
		t.Fatal(err)
	}
	if d.Step != StepImages || d.TrackingNumber != "PKG-42" {
		t.Errorf("draft = %+v", d)
	}
}

func TestBackPreservesTrackingNumber(t *testing.T) {
	d := NewDraft()
	if err := d.Start("PKG-42"); err != nil {
		t.Fatal(err)
	}
	if err := d.Back(); err != nil {
		t.Fatal(err)
	}
	if d.Step != StepParcelInfo {
		t.Errorf("step = %s", d.Step)
	}
	if d.TrackingNumber != "PKG-42" {
		t.Errorf("tracking number discarded: %q", d.TrackingNumber)
	}
	// And forward again without retyping.
	if err := d.Start(d.TrackingNumber); err != nil {
		t.Fatal(err)
	}
	if d.Step != StepImages {
		t.Errorf("step = %s", d.Step)
	}
}

func TestTransitionsGuardedByStep(t *testing.T) {
	d := NewDraft()
	if err := d.Back(); !errors.Is(err, ErrWrongStep) {
		t.Errorf("back from parcel-info = %v", err)
	}
	if err := d.Start("PKG-1"); err != nil {
		t.Fatal(err)
	}
	if err := d.Start("PKG-2"); !errors.Is(err, ErrWrongStep) {
		t.Errorf("start from images = %v", err)
	}
}

func TestManagerOneDraftPerSession(t *testing.T) {
	m := NewManager()
	a := m.Get("sid-a")
	if got := m.Get("sid-a"); got != a {
		t.Error("same session must get the same draft")
	}
	if got := m.Get("sid-b"); got == a {
		t.Error("sessions must not share drafts")
	}
}

func TestManagerDropReleasesPreviews(t *testing.T) {
	reg, err := capture.NewRegistry(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	m := NewManager()
	d := m.Get("sid")
	if err := d.Set.Slots[capture.AngleFront].Add(reg, []capture.Upload{{Filename: "a.jpg", Data: []byte("a")}}, 2); err != nil {
		t.Fatal(err)
	}
	m.Drop("sid", reg)
	if reg.Len() != 0 {
		t.Errorf("previews leaked: %d", reg.Len())
	}
	if m.Get("sid") == d {
		t.Error("dropped draft must not be reused")
	}
}
