package backend

import (
	"context"
	"strconv"

	"packsight/internal/models"
)

func (c *Client) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var s models.DashboardStats
	err := c.getJSON(ctx, "/api/v1/analytics/dashboard", &s)
	return s, err
}

func (c *Client) DamageTrends(ctx context.Context, days int) ([]models.DamageTrendPoint, error) {
	if days <= 0 {
		days = 30
	}
	var pts []models.DamageTrendPoint
	err := c.getJSON(ctx, "/api/v1/analytics/damage-trends?days="+strconv.Itoa(days), &pts)
	return pts, err
}

func (c *Client) DamageByType(ctx context.Context) ([]models.DamageTypeBucket, error) {
	var buckets []models.DamageTypeBucket
	err := c.getJSON(ctx, "/api/v1/analytics/damage-by-type", &buckets)
	return buckets, err
}

func (c *Client) SupplierPerformance(ctx context.Context, limit int) ([]models.SupplierPerformance, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []models.SupplierPerformance
	err := c.getJSON(ctx, "/api/v1/analytics/supplier-performance?limit="+strconv.Itoa(limit), &rows)
	return rows, err
}
