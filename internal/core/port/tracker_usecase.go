package port

import (
	"context"

	"trackpanel/internal/core/domain"
)

// TrackerUseCase defines the business operations of the tracker. This is the
// primary port into the application domain; mock implementations are
// generated from it for testing.
type TrackerUseCase interface {
	// RouteClick logs the click (best-effort, without blocking the
	// redirect) and returns the campaign's destination URL with macros
	// expanded. It fails with domain.ErrNotFound when the campaign cannot
	// be resolved and domain.ErrNoDestination when it has no usable URL.
	RouteClick(ctx context.Context, req ClickRequest) (string, error)

	// RecordConversion turns one inbound postback into exactly one
	// persisted conversion with its sampling status assigned. Duplicate
	// postbacks for an already-recorded click succeed without a write and
	// report Duplicate=true.
	RecordConversion(ctx context.Context, req ConversionRequest) (*ConversionResult, error)

	// ReprocessCampaign re-derives the sampling status of every conversion
	// of a campaign from its current rule list. Runs are serialized per
	// campaign; concurrent invocations share one run's result.
	ReprocessCampaign(ctx context.Context, campaignRef string) (*ReprocessResult, error)

	// UpdateSamplingRules persists a campaign's new rule list and triggers
	// reprocessing of its existing conversions.
	UpdateSamplingRules(ctx context.Context, campaignRef string, rules []domain.SamplingRule) (*ReprocessResult, error)

	// GetPostbackConfig reads the upstream postback URL setting.
	GetPostbackConfig(ctx context.Context) (*domain.PostbackConfig, error)
	// SavePostbackConfig updates the upstream postback URL setting.
	SavePostbackConfig(ctx context.Context, url string) (*domain.PostbackConfig, error)

	// GetStats returns aggregated clicks and conversions for a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// ClickRequest carries the query parameters of one inbound tracking hit.
type ClickRequest struct {
	ClickID     string
	CampaignRef string
	PublisherID string
	Source      string
	GAID        string
	IDFA        string
	AppName     string
	P1          string
	P2          string
	IPAddress   string
	UserAgent   string
}

// ConversionRequest carries one inbound conversion postback. Payout is kept
// raw; unparseable values default to 0.
type ConversionRequest struct {
	ClickID     string
	Payout      string
	CampaignRef string
}

// ConversionResult reports the assigned status of a recorded conversion.
// Duplicate marks an idempotent repeat of an earlier postback.
type ConversionResult struct {
	Status    domain.ConversionStatus
	Duplicate bool
}

// ReprocessResult summarizes one reprocessing run.
type ReprocessResult struct {
	Total   int `json:"total"`
	Updated int `json:"updated"`
}
