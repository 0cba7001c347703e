package domain

import "time"

// Click is one inbound tracking hit. It is created once by the click router
// and never mutated; the conversion classifier reads it back to recover the
// attribution context (campaign, publisher, source) instead of trusting the
// postback's own query parameters.
type Click struct {
	ID          int64
	ClickID     string
	CampaignID  int64
	PublisherID string
	Source      string
	GAID        string
	IDFA        string
	AppName     string
	P1          string
	P2          string
	IPAddress   string
	UserAgent   string
	CreatedAt   time.Time
}
