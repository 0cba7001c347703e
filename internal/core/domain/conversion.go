package domain

import "time"

// ConversionStatus is the reporting state of a conversion.
type ConversionStatus string

const (
	StatusPending  ConversionStatus = "pending"
	StatusApproved ConversionStatus = "approved"
	StatusRejected ConversionStatus = "rejected"
	StatusSampled  ConversionStatus = "sampled"
)

// Conversion is one recorded postback. Exactly one conversion may exist per
// ClickID; duplicate postbacks are idempotent no-ops. OriginalStatus freezes
// the status assigned at classification time and is never updated afterwards,
// so reports can answer "was this ever sampled" regardless of later
// reprocessing. Only Status is mutable, and only by the reprocessor.
type Conversion struct {
	ID             int64
	ClickID        string
	CampaignID     int64
	PublisherID    string
	Source         string
	Payout         float64
	GAID           string
	IDFA           string
	AppName        string
	P1             string
	P2             string
	Status         ConversionStatus
	OriginalStatus ConversionStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
