package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDetectDamageUploadsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/ml/detect-damage" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		f, fh, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		if fh.Filename != "front.jpg" {
			t.Errorf("filename = %q", fh.Filename)
		}
		b, _ := io.ReadAll(f)
		if string(b) != "jpegbytes" {
			t.Errorf("file content = %q", b)
		}
		w.Write([]byte(`{"filename":"front.jpg","has_damage":true,"damage_score":0.91,"damage_type":"dent","detection_count":1}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).DetectDamage(context.Background(), "front.jpg", strings.NewReader("jpegbytes"))
	if err != nil {
		t.Fatal(err)
	}
	if !res.HasDamage || res.DamageType != "dent" || res.DetectionCount != 1 {
		t.Errorf("result = %+v", res)
	}
}

func TestDetectDamageFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := New(srv.URL).DetectDamage(context.Background(), "x.jpg", strings.NewReader("b")); err == nil {
		t.Fatal("want error on 500")
	}
}
