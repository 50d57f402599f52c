package models

import "time"

// Session is the gateway-side record behind the session cookie. Token is the
// bearer credential issued by the inspection backend at login; it never
// reaches the browser.
type Session struct {
	SID       string    `gorm:"type:uuid;primaryKey" json:"sid"`
	Token     string    `gorm:"not null" json:"-"`
	Username  string    `gorm:"index" json:"username"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// InspectionRecord is written once per completed wizard submission and backs
// the inspections list page.
type InspectionRecord struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	TrackingNumber string    `gorm:"index;not null" json:"tracking_number"`
	SubmittedBy    string    `json:"submitted_by"`
	Submitted      int       `gorm:"not null" json:"submitted"`
	Processed      int       `gorm:"not null" json:"processed"`
	Damaged        int       `gorm:"not null" json:"damaged"`
	Results        JSONB     `gorm:"type:jsonb;default:'{}'::jsonb" json:"results"`
	CreatedAt      time.Time `json:"created_at"`
}
