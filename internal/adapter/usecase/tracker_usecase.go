package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"trackpanel/internal/core/domain"
	"trackpanel/internal/core/port"
)

const (
	dayLayout = "2006-01-02"
	// backgroundTimeout bounds fire-and-forget work (click logging,
	// notifier calls) detached from the request context.
	backgroundTimeout = 15 * time.Second
)

// TrackerUseCase implements port.TrackerUseCase. It orchestrates the click
// router, the conversion classifier and the reprocessor over the repository,
// the sampling quota and the outbound notifier.
type TrackerUseCase struct {
	repo     port.TrackerRepository
	quota    port.SampleQuota
	notifier port.Notifier
	logger   *slog.Logger

	// randFloat draws uniformly from [0,1) for percentage rules. Injected
	// so tests can pin the draw.
	randFloat func() float64
	// now is the clock behind day-boundary bucketing.
	now func() time.Time

	// reprocess serializes reprocessing per campaign: concurrent calls for
	// the same campaign share a single run.
	reprocess singleflight.Group
}

// NewTrackerUseCase creates the usecase with the provided collaborators.
func NewTrackerUseCase(repo port.TrackerRepository, quota port.SampleQuota, notifier port.Notifier, logger *slog.Logger) *TrackerUseCase {
	return &TrackerUseCase{
		repo:      repo,
		quota:     quota,
		notifier:  notifier,
		logger:    logger,
		randFloat: rand.Float64,
		now:       time.Now,
	}
}

// RouteClick resolves the campaign, logs the click in the background and
// returns the destination URL with macros expanded.
func (u *TrackerUseCase) RouteClick(ctx context.Context, req port.ClickRequest) (string, error) {
	camp, err := u.repo.FindCampaignByRef(ctx, req.CampaignRef)
	if err != nil {
		return "", fmt.Errorf("resolve campaign: %w", err)
	}
	if camp == nil {
		return "", fmt.Errorf("campaign %q: %w", req.CampaignRef, domain.ErrNotFound)
	}
	dest := camp.DestinationURL()
	if dest == "" {
		return "", fmt.Errorf("campaign %d: %w", camp.CampaignID, domain.ErrNoDestination)
	}

	clickID := req.ClickID
	if !usableClickID(clickID) {
		// Missing or still an unexpanded macro placeholder; a fresh id
		// keeps broken upstream templates from poisoning attribution.
		clickID = uuid.NewString()
	}

	u.logClick(camp.CampaignID, clickID, req)

	return domain.ExpandMacros(dest, domain.MacroParams{
		ClickID:     clickID,
		CampID:      strconv.FormatInt(camp.CampaignID, 10),
		PublisherID: req.PublisherID,
		Source:      req.Source,
		GAID:        req.GAID,
		IDFA:        req.IDFA,
		AppName:     req.AppName,
		P1:          req.P1,
		P2:          req.P2,
	}), nil
}

// usableClickID rejects empty identifiers and ones that are themselves
// unexpanded macros ({click_id}, %7Bclick_id%7D and the like).
func usableClickID(id string) bool {
	return id != "" && !strings.ContainsAny(id, "{}%")
}

// logClick persists the click without blocking the redirect. Failures are
// logged and swallowed; losing a click record must not lose the visitor.
func (u *TrackerUseCase) logClick(campaignID int64, clickID string, req port.ClickRequest) {
	click := &domain.Click{
		ClickID:     clickID,
		CampaignID:  campaignID,
		PublisherID: strings.TrimSpace(req.PublisherID),
		Source:      req.Source,
		GAID:        req.GAID,
		IDFA:        req.IDFA,
		AppName:     req.AppName,
		P1:          req.P1,
		P2:          req.P2,
		IPAddress:   req.IPAddress,
		UserAgent:   req.UserAgent,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		if err := u.repo.CreateClick(ctx, click); err != nil {
			u.logger.Error("click logging failed",
				slog.String("click_id", clickID),
				slog.Int64("campaign_id", campaignID),
				slog.Any("error", err))
		}
	}()
}

// RecordConversion implements the conversion classifier. The click is the
// source of truth for attribution; the postback's own campaign hint is used
// only when the click cannot supply one.
func (u *TrackerUseCase) RecordConversion(ctx context.Context, req port.ConversionRequest) (*port.ConversionResult, error) {
	if req.ClickID == "" {
		return nil, fmt.Errorf("click_id is required: %w", domain.ErrInvalidRequest)
	}

	click, err := u.repo.FindClickByID(ctx, req.ClickID)
	if err != nil {
		return nil, fmt.Errorf("resolve click: %w", err)
	}
	if click == nil {
		return nil, fmt.Errorf("click %q: %w", req.ClickID, domain.ErrNotFound)
	}

	if existing, err := u.repo.FindConversionByClickID(ctx, req.ClickID); err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	} else if existing != nil {
		// Upstream partners retry postbacks; retries must not double-count.
		return &port.ConversionResult{Status: existing.Status, Duplicate: true}, nil
	}

	campaignRef := strconv.FormatInt(click.CampaignID, 10)
	if click.CampaignID == 0 && req.CampaignRef != "" {
		campaignRef = req.CampaignRef
	}
	camp, err := u.repo.FindCampaignByRef(ctx, campaignRef)
	if err != nil {
		return nil, fmt.Errorf("resolve campaign: %w", err)
	}

	var publisher *domain.Publisher
	if click.PublisherID != "" {
		publisher, err = u.repo.FindPublisherByRef(ctx, click.PublisherID)
		if err != nil {
			return nil, fmt.Errorf("resolve publisher: %w", err)
		}
	}

	sampled, err := u.evaluateSampling(ctx, camp, publisher, click)
	if err != nil {
		// Fail open: an unavailable quota backend must not drop revenue
		// events, it only under-samples until the backend recovers.
		u.logger.Error("sampling evaluation failed, approving",
			slog.String("click_id", click.ClickID), slog.Any("error", err))
		sampled = false
	}

	status := domain.StatusApproved
	if sampled {
		status = domain.StatusSampled
	}
	campaignID := click.CampaignID
	if campaignID == 0 && camp != nil {
		campaignID = camp.CampaignID
	}
	conv := &domain.Conversion{
		ClickID:        click.ClickID,
		CampaignID:     campaignID,
		PublisherID:    click.PublisherID,
		Source:         click.Source,
		Payout:         parsePayout(req.Payout),
		GAID:           click.GAID,
		IDFA:           click.IDFA,
		AppName:        click.AppName,
		P1:             click.P1,
		P2:             click.P2,
		Status:         status,
		OriginalStatus: status,
	}
	if err = u.repo.CreateConversion(ctx, conv); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Lost a race with a concurrent first postback for the same
			// click. The unique index collapsed it to one row; report the
			// idempotent success.
			return &port.ConversionResult{Status: status, Duplicate: true}, nil
		}
		return nil, fmt.Errorf("persist conversion: %w", err)
	}

	u.fireNotifications(ctx, camp, publisher, conv, sampled)

	return &port.ConversionResult{Status: status}, nil
}

// evaluateSampling applies the first applicable rule of the campaign to one
// live conversion event. No campaign, no rules or no applicable rule means
// approved.
func (u *TrackerUseCase) evaluateSampling(ctx context.Context, camp *domain.Campaign, publisher *domain.Publisher, click *domain.Click) (bool, error) {
	if camp == nil || len(camp.Rules) == 0 {
		return false, nil
	}

	rule := domain.MatchRule(camp.Rules, publisherAliases(publisher, click.PublisherID), click.Source)
	if rule == nil {
		return false, nil
	}

	switch rule.SamplingMode() {
	case domain.SamplingFixed:
		cap := int64(rule.SamplingValue())
		if cap <= 0 {
			return false, nil
		}
		key := port.QuotaKey{
			CampaignID:  camp.CampaignID,
			PublisherID: strings.TrimSpace(rule.PublisherID),
			Day:         u.now().Format(dayLayout),
		}
		return u.quota.Acquire(ctx, key, cap, u.untilMidnight())
	default:
		// Independent per-event draw; the long-run sampled fraction
		// converges to the configured percentage.
		return u.randFloat()*100 < rule.SamplingValue(), nil
	}
}

// fireNotifications dispatches the outbound postbacks for a classified
// conversion. The upstream revenue tracker is always notified, sampled or
// not; the publisher's own postback is deliberately withheld for sampled
// conversions. Both run detached from the request and never fail it.
func (u *TrackerUseCase) fireNotifications(ctx context.Context, camp *domain.Campaign, publisher *domain.Publisher, conv *domain.Conversion, sampled bool) {
	params := domain.MacroParams{
		ClickID:     conv.ClickID,
		Payout:      strconv.FormatFloat(conv.Payout, 'f', -1, 64),
		CampID:      strconv.FormatInt(conv.CampaignID, 10),
		PublisherID: conv.PublisherID,
		Source:      conv.Source,
		GAID:        conv.GAID,
		IDFA:        conv.IDFA,
		AppName:     conv.AppName,
		P1:          conv.P1,
		P2:          conv.P2,
	}

	cfg, err := u.repo.GetPostbackConfig(ctx)
	if err != nil {
		u.logger.Error("load postback config", slog.Any("error", err))
	} else if cfg != nil && cfg.URL != "" {
		u.deliver("upstream", domain.ExpandMacros(cfg.URL, params))
	}

	if !sampled && publisher != nil && publisher.PostbackURL != "" {
		u.deliver("publisher", domain.ExpandMacros(publisher.PostbackURL, params))
	}
}

// deliver fires one postback in the background. Exhausted retries are logged
// inside the notifier; this only records the final outcome.
func (u *TrackerUseCase) deliver(kind, url string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		if err := u.notifier.Deliver(ctx, url); err != nil {
			u.logger.Error("postback delivery failed",
				slog.String("kind", kind), slog.String("url", url), slog.Any("error", err))
		}
	}()
}

// ReprocessCampaign re-derives every conversion status of a campaign from
// its current rules. Concurrent runs for the same campaign collapse into
// one.
func (u *TrackerUseCase) ReprocessCampaign(ctx context.Context, campaignRef string) (*port.ReprocessResult, error) {
	camp, err := u.repo.FindCampaignByRef(ctx, campaignRef)
	if err != nil {
		return nil, fmt.Errorf("resolve campaign: %w", err)
	}
	if camp == nil {
		return nil, fmt.Errorf("campaign %q: %w", campaignRef, domain.ErrNotFound)
	}

	v, err, _ := u.reprocess.Do(strconv.FormatInt(camp.CampaignID, 10), func() (any, error) {
		return u.reprocessCampaign(ctx, camp)
	})
	if err != nil {
		return nil, err
	}
	return v.(*port.ReprocessResult), nil
}

func (u *TrackerUseCase) reprocessCampaign(ctx context.Context, camp *domain.Campaign) (*port.ReprocessResult, error) {
	convs, err := u.repo.ListConversionsByCampaign(ctx, camp.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("load conversions: %w", err)
	}

	aliases := u.resolveAliases(ctx, convs)
	changes := domain.PlanReprocess(convs, camp.Rules, aliases)

	for i, ch := range changes {
		if err = u.repo.UpdateConversionStatus(ctx, ch.ConversionID, ch.Status); err != nil {
			// Not transactional: the first i writes stay applied.
			// Re-running the reprocess is the recovery path.
			return nil, fmt.Errorf("update conversion %d (%d/%d applied): %w",
				ch.ConversionID, i, len(changes), err)
		}
	}

	u.syncQuotas(ctx, camp, convs, changes, aliases)

	u.logger.Info("reprocessed campaign",
		slog.Int64("campaign_id", camp.CampaignID),
		slog.Int("conversions", len(convs)),
		slog.Int("updated", len(changes)))

	return &port.ReprocessResult{Total: len(convs), Updated: len(changes)}, nil
}

// resolveAliases looks up every distinct publisher referenced by the
// conversions once, so rule matching during reprocessing tolerates the same
// identifier aliases as live classification.
func (u *TrackerUseCase) resolveAliases(ctx context.Context, convs []domain.Conversion) map[string][]string {
	aliases := make(map[string][]string)
	for i := range convs {
		ref := convs[i].PublisherID
		if ref == "" {
			continue
		}
		if _, ok := aliases[ref]; ok {
			continue
		}
		pub, err := u.repo.FindPublisherByRef(ctx, ref)
		if err != nil || pub == nil {
			aliases[ref] = []string{ref}
			continue
		}
		aliases[ref] = publisherAliases(pub, ref)
	}
	return aliases
}

// syncQuotas rewrites today's fixed-mode counters after a reprocess changed
// statuses, so subsequent live decisions continue from the reprocessed
// state. Best effort; a failed sync only skews today's cap until midnight.
func (u *TrackerUseCase) syncQuotas(ctx context.Context, camp *domain.Campaign, convs []domain.Conversion, changes []domain.StatusChange, aliases map[string][]string) {
	finalStatus := make(map[int64]domain.ConversionStatus, len(changes))
	for _, ch := range changes {
		finalStatus[ch.ConversionID] = ch.Status
	}
	status := func(c *domain.Conversion) domain.ConversionStatus {
		if s, ok := finalStatus[c.ID]; ok {
			return s
		}
		return c.Status
	}

	today := u.now().Format(dayLayout)
	ttl := u.untilMidnight()
	synced := make(map[port.QuotaKey]bool)

	for _, rule := range camp.Rules {
		if rule.SamplingMode() != domain.SamplingFixed {
			continue
		}
		scope := strings.TrimSpace(rule.PublisherID)
		key := port.QuotaKey{CampaignID: camp.CampaignID, PublisherID: scope, Day: today}
		if synced[key] {
			continue
		}
		synced[key] = true

		var n int64
		for i := range convs {
			c := &convs[i]
			if status(c) != domain.StatusSampled {
				continue
			}
			if c.CreatedAt.Local().Format(dayLayout) != today {
				continue
			}
			if scope != "" && !aliasMatches(aliases, c.PublisherID, scope) {
				continue
			}
			n++
		}
		if err := u.quota.Set(ctx, key, n, ttl); err != nil {
			u.logger.Error("quota resync failed",
				slog.String("key", key.String()), slog.Any("error", err))
		}
	}
}

// UpdateSamplingRules persists the new rule list and reprocesses existing
// conversions under it.
func (u *TrackerUseCase) UpdateSamplingRules(ctx context.Context, campaignRef string, rules []domain.SamplingRule) (*port.ReprocessResult, error) {
	camp, err := u.repo.FindCampaignByRef(ctx, campaignRef)
	if err != nil {
		return nil, fmt.Errorf("resolve campaign: %w", err)
	}
	if camp == nil {
		return nil, fmt.Errorf("campaign %q: %w", campaignRef, domain.ErrNotFound)
	}
	if err = u.repo.UpdateCampaignRules(ctx, camp.CampaignID, rules); err != nil {
		return nil, fmt.Errorf("update rules: %w", err)
	}
	return u.ReprocessCampaign(ctx, campaignRef)
}

// GetPostbackConfig reads the upstream postback setting.
func (u *TrackerUseCase) GetPostbackConfig(ctx context.Context) (*domain.PostbackConfig, error) {
	return u.repo.GetPostbackConfig(ctx)
}

// SavePostbackConfig updates the upstream postback setting. An empty URL
// clears it.
func (u *TrackerUseCase) SavePostbackConfig(ctx context.Context, url string) (*domain.PostbackConfig, error) {
	return u.repo.SavePostbackConfig(ctx, url)
}

// GetStats returns aggregated stats for a period.
func (u *TrackerUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return u.repo.GetStats(ctx, req)
}

// untilMidnight returns the remaining lifetime of today's quota counters.
func (u *TrackerUseCase) untilMidnight() time.Duration {
	now := u.now()
	y, m, d := now.Date()
	midnight := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	return midnight.Sub(now)
}

// publisherAliases collects every identifier the conversion's publisher is
// known by, always including the raw value copied from the click.
func publisherAliases(publisher *domain.Publisher, raw string) []string {
	var aliases []string
	if publisher != nil {
		aliases = publisher.Aliases()
	}
	if raw != "" {
		aliases = append(aliases, raw)
	}
	return aliases
}

func aliasMatches(aliases map[string][]string, ref, scope string) bool {
	known := aliases[ref]
	if len(known) == 0 {
		known = []string{ref}
	}
	for _, a := range known {
		if strings.TrimSpace(a) == scope {
			return true
		}
	}
	return false
}

func parsePayout(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
