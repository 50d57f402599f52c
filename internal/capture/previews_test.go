package capture

import (
	"bytes"
	"errors"
	"testing"
)

func TestRegistryRoundTrip(t *testing.T) {
	reg := newTestRegistry(t)
	id, err := reg.Put([]byte("pixels"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := reg.Bytes(id)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("pixels")) {
		t.Errorf("bytes = %q", got)
	}
}

func TestRegistryReleaseExactlyOnce(t *testing.T) {
	reg := newTestRegistry(t)
	id, err := reg.Put([]byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	if err := reg.Release(id); err != nil {
		t.Fatalf("first release: %v", err)
	}
	if err := reg.Release(id); !errors.Is(err, ErrPreviewNotFound) {
		t.Fatalf("second release must fail, got %v", err)
	}
	if _, err := reg.Bytes(id); !errors.Is(err, ErrPreviewNotFound) {
		t.Error("released preview still readable")
	}
	if reg.Len() != 0 {
		t.Errorf("len = %d", reg.Len())
	}
}

func TestRegistryUnknownID(t *testing.T) {
	reg := newTestRegistry(t)
	if _, err := reg.Bytes("nope"); !errors.Is(err, ErrPreviewNotFound) {
		t.Errorf("bytes(nope) = %v", err)
	}
	if err := reg.Release("nope"); !errors.Is(err, ErrPreviewNotFound) {
		t.Errorf("release(nope) = %v", err)
	}
}
