package models

import "time"

// Parcel statuses are owned by the backend; the gateway only requests
// transitions and re-reads the authoritative state afterwards.
const (
	StatusReceived   = "received"
	StatusInspecting = "inspecting"
	StatusApproved   = "approved"
	StatusDamaged    = "damaged"
	StatusQuarantine = "quarantine"
	StatusStored     = "stored"
	StatusShipped    = "shipped"
)

// ParcelStatuses lists every status the backend can report, in the order the
// filter dropdown and the detail-page action row present them.
var ParcelStatuses = []string{
	StatusReceived,
	StatusInspecting,
	StatusApproved,
	StatusDamaged,
	StatusQuarantine,
	StatusStored,
	StatusShipped,
}

const (
	RoleScanner    = "SCANNER"
	RoleInspector  = "INSPECTOR"
	RoleSupervisor = "SUPERVISOR"
	RoleAdmin      = "ADMIN"
)

type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

type Parcel struct {
	ParcelID         string    `json:"parcel_id"`
	TrackingNumber   string    `json:"tracking_number"`
	Status           string    `json:"status"`
	HasDamage        bool      `json:"has_damage"`
	DamageSeverity   *string   `json:"damage_severity,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	AutoResolved     bool      `json:"auto_resolved"`
	ResolutionReason *string   `json:"resolution_reason,omitempty"`
}

type ParcelDetail struct {
	Parcel
	Inspections      []Inspection      `json:"inspections,omitempty"`
	DamageDetections []DamageDetection `json:"damage_detections,omitempty"`
}

type Inspection struct {
	InspectionID   string     `json:"inspection_id"`
	ParcelID       string     `json:"parcel_id"`
	OverallStatus  string     `json:"overall_status"`
	HasDamage      bool       `json:"has_damage"`
	DamageCount    int        `json:"damage_count"`
	ImagesReceived int        `json:"images_received"`
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

type DamageDetection struct {
	DetectionID string  `json:"detection_id"`
	DamageType  string  `json:"damage_type"`
	Severity    string  `json:"severity"`
	Confidence  float64 `json:"confidence"`
}

type DashboardStats struct {
	TotalInspections   int     `json:"total_inspections"`
	DamagedParcels     int     `json:"damaged_parcels"`
	DamageRate         float64 `json:"damage_rate"`
	PendingInspections int     `json:"pending_inspections"`
	AvgProcessingTime  float64 `json:"avg_processing_time"`
}

type DamageTrendPoint struct {
	Date        string  `json:"date"`
	Count       int     `json:"count"`
	SeverityAvg float64 `json:"severity_avg"`
}

type DamageTypeBucket struct {
	DamageType string  `json:"damage_type"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type SupplierPerformance struct {
	SupplierName   string  `json:"supplier_name"`
	TotalParcels   int     `json:"total_parcels"`
	DamagedParcels int     `json:"damaged_parcels"`
	DamageRate     float64 `json:"damage_rate"`
}

// DetectionResult is the per-image payload returned by the damage detector.
type DetectionResult struct {
	Filename       string           `json:"filename"`
	HasDamage      bool             `json:"has_damage"`
	DamageScore    float64          `json:"damage_score"`
	DamageType     string           `json:"damage_type"`
	Detections     []map[string]any `json:"detections"`
	DetectionCount int              `json:"detection_count"`
}
