package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"packsight/internal/models"
)

// ListParams are the optional parcel list filters. Only set fields make it
// into the query string; the backend does all filtering.
type ListParams struct {
	Status    string
	HasDamage *bool
	Search    string
	Page      int
	Limit     int
}

func (p ListParams) encode() string {
	v := url.Values{}
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.HasDamage != nil {
		v.Set("has_damage", strconv.FormatBool(*p.HasDamage))
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

type ParcelPage struct {
	Parcels []models.Parcel `json:"parcels"`
	Total   int             `json:"total"`
}

func (c *Client) ListParcels(ctx context.Context, p ListParams) (ParcelPage, error) {
	var page ParcelPage
	err := c.getJSON(ctx, "/api/v1/parcels"+p.encode(), &page)
	return page, err
}

func (c *Client) GetParcel(ctx context.Context, parcelID string) (models.ParcelDetail, error) {
	var d models.ParcelDetail
	err := c.getJSON(ctx, "/api/v1/parcels/"+url.PathEscape(parcelID), &d)
	return d, err
}

// UpdateParcelStatus requests a transition. Legality is the backend's call;
// the caller refetches the detail afterwards to observe the outcome.
func (c *Client) UpdateParcelStatus(ctx context.Context, parcelID, status string) (models.Parcel, error) {
	var p models.Parcel
	err := c.sendJSON(ctx, http.MethodPatch,
		"/api/v1/parcels/"+url.PathEscape(parcelID)+"/status",
		map[string]string{"status": status}, &p)
	return p, err
}

// BulkUpdateStatus moves several parcels at once. The list page renders bulk
// action buttons but does not call this yet.
func (c *Client) BulkUpdateStatus(ctx context.Context, parcelIDs []string, status string) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/v1/parcels/bulk-update",
		map[string]any{"parcel_ids": parcelIDs, "status": status}, nil)
}
