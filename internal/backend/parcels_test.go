package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func TestListParamsEncode(t *testing.T) {
	tests := []struct {
		name string
		p    ListParams
		want string
	}{
		{"empty", ListParams{}, ""},
		{"status only", ListParams{Status: "damaged"}, "?status=damaged"},
		{"damage true", ListParams{HasDamage: boolPtr(true)}, "?has_damage=true"},
		{"damage false still sent", ListParams{HasDamage: boolPtr(false)}, "?has_damage=false"},
		{"search", ListParams{Search: "PKG-1"}, "?search=PKG-1"},
		{"paging", ListParams{Page: 2, Limit: 25}, "?limit=25&page=2"},
		{
			"all",
			ListParams{Status: "received", HasDamage: boolPtr(true), Search: "x", Page: 1, Limit: 10},
			"?has_damage=true&limit=10&page=1&search=x&status=received",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.encode(); got != tt.want {
				t.Errorf("encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListParcelsPassesFilterThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/parcels" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("status"); got != "damaged" {
			t.Errorf("status query = %q", got)
		}
		if len(r.URL.Query()) != 1 {
			t.Errorf("extra query params: %v", r.URL.Query())
		}
		w.Write([]byte(`{"parcels":[{"parcel_id":"p1","tracking_number":"PKG-1","status":"damaged","has_damage":true}],"total":1}`))
	}))
	defer srv.Close()

	page, err := New(srv.URL).ListParcels(context.Background(), ListParams{Status: "damaged"})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 1 || len(page.Parcels) != 1 {
		t.Fatalf("page = %+v", page)
	}
	if page.Parcels[0].TrackingNumber != "PKG-1" || !page.Parcels[0].HasDamage {
		t.Errorf("row = %+v", page.Parcels[0])
	}
}

func TestUpdateParcelStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/v1/parcels/p1/status" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if body["status"] != "approved" {
			t.Errorf("body = %v", body)
		}
		w.Write([]byte(`{"parcel_id":"p1","status":"approved"}`))
	}))
	defer srv.Close()

	p, err := New(srv.URL).UpdateParcelStatus(context.Background(), "p1", "approved")
	if err != nil {
		t.Fatal(err)
	}
	if p.Status != "approved" {
		t.Errorf("status = %q", p.Status)
	}
}

func TestBulkUpdateStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/parcels/bulk-update" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			ParcelIDs []string `json:"parcel_ids"`
			Status    string   `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if len(body.ParcelIDs) != 2 || body.Status != "approved" {
			t.Errorf("body = %+v", body)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := New(srv.URL).BulkUpdateStatus(context.Background(), []string{"p1", "p2"}, "approved"); err != nil {
		t.Fatal(err)
	}
}
