package port

import (
	"context"
	"time"

	"trackpanel/internal/core/domain"
)

// TrackerRepository defines the persistence layer for the tracker. It is an
// outbound port in hexagonal architecture. Find* methods return (nil, nil)
// when the entity does not exist; callers decide whether absence is an
// error.
type TrackerRepository interface {
	// FindCampaignByRef resolves a campaign from an inbound reference:
	// numeric public campaign id first, internal id as fallback.
	FindCampaignByRef(ctx context.Context, ref string) (*domain.Campaign, error)
	// UpdateCampaignRules replaces the campaign's ordered sampling rule list.
	UpdateCampaignRules(ctx context.Context, campaignID int64, rules []domain.SamplingRule) error

	// FindPublisherByRef resolves a publisher by numeric id or external
	// reference id.
	FindPublisherByRef(ctx context.Context, ref string) (*domain.Publisher, error)

	// CreateClick stores a click record.
	CreateClick(ctx context.Context, click *domain.Click) error
	// FindClickByID looks a click up by its public click identifier.
	FindClickByID(ctx context.Context, clickID string) (*domain.Click, error)

	// FindConversionByClickID returns the conversion recorded for a click,
	// if any. At most one can exist.
	FindConversionByClickID(ctx context.Context, clickID string) (*domain.Conversion, error)
	// CreateConversion inserts a conversion. A second insert for the same
	// click id fails with domain.ErrDuplicate.
	CreateConversion(ctx context.Context, conv *domain.Conversion) error
	// UpdateConversionStatus rewrites status only; originalStatus is frozen
	// at insert time and no method mutates it.
	UpdateConversionStatus(ctx context.Context, id int64, status domain.ConversionStatus) error
	// ListConversionsByCampaign returns every conversion of a campaign
	// ordered by creation time ascending, id ascending. The reprocessor
	// depends on this order being stable.
	ListConversionsByCampaign(ctx context.Context, campaignID int64) ([]domain.Conversion, error)

	// GetPostbackConfig reads the singleton upstream postback setting.
	GetPostbackConfig(ctx context.Context) (*domain.PostbackConfig, error)
	// SavePostbackConfig upserts the singleton upstream postback setting.
	SavePostbackConfig(ctx context.Context, url string) (*domain.PostbackConfig, error)

	// GetStats returns aggregated tracking metrics for a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// StatsReq selects the reporting period and an optional single campaign.
type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *int64
}

// StatsResp contains aggregated click and conversion counts for a period.
// Conversions is the gross count; Sampled and Approved split it by current
// status. Payout sums approved conversion payouts.
type StatsResp struct {
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Sampled     int64   `json:"sampled"`
	Approved    int64   `json:"approved"`
	Payout      float64 `json:"payout"`
}
