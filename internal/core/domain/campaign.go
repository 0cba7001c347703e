package domain

import "time"

// CampaignStatus is the operator-controlled lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignActive  CampaignStatus = "Active"
	CampaignPaused  CampaignStatus = "Paused"
	CampaignStopped CampaignStatus = "Stopped"
)

// Campaign represents an offer with a destination URL and an ordered list of
// sampling rules. CampaignID is the public numeric identifier used in
// tracking links; ID is the internal primary key. Inbound campaign
// references are resolved against CampaignID first, ID second.
type Campaign struct {
	ID              int64
	CampaignID      int64
	Title           string
	Description     string
	PreviewURL      string
	OverrideURL     string
	DefaultURL      string
	DefaultGoalName string
	Status          CampaignStatus
	CreatedBy       string
	Rules           []SamplingRule
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DestinationURL returns the redirect target: the override URL when set,
// otherwise the default URL. An empty result means the campaign is not
// routable.
func (c *Campaign) DestinationURL() string {
	if c.OverrideURL != "" {
		return c.OverrideURL
	}
	return c.DefaultURL
}
