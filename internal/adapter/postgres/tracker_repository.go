package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"trackpanel/internal/core/domain"
	"trackpanel/internal/core/port"
)

// pgUniqueViolation is the SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

// TrackerRepository implements port.TrackerRepository using pgxpool for
// PostgreSQL. Sampling rules live in a JSONB column on campaigns, keeping
// the ordered embedded list of the domain model intact.
type TrackerRepository struct {
	pool *pgxpool.Pool
}

// NewTrackerRepository returns a new repository instance.
func NewTrackerRepository(pool *pgxpool.Pool) *TrackerRepository {
	return &TrackerRepository{pool: pool}
}

const campaignColumns = `
    id, campaign_id, title, description, preview_url, override_url,
    default_url, default_goal_name, status, created_by, sampling_rules,
    created_at, updated_at`

// FindCampaignByRef resolves a campaign from an inbound reference. Numeric
// references try the public campaign id first and fall back to the internal
// id, so legacy links built on either keep working. Non-numeric references
// resolve to nothing.
func (r *TrackerRepository) FindCampaignByRef(ctx context.Context, ref string) (*domain.Campaign, error) {
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return nil, nil
	}
	camp, err := r.findCampaign(ctx, "campaign_id", id)
	if err != nil || camp != nil {
		return camp, err
	}
	return r.findCampaign(ctx, "id", id)
}

func (r *TrackerRepository) findCampaign(ctx context.Context, column string, id int64) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE `+column+` = $1`, id)

	var (
		camp     domain.Campaign
		rulesRaw []byte
	)
	err := row.Scan(
		&camp.ID,
		&camp.CampaignID,
		&camp.Title,
		&camp.Description,
		&camp.PreviewURL,
		&camp.OverrideURL,
		&camp.DefaultURL,
		&camp.DefaultGoalName,
		&camp.Status,
		&camp.CreatedBy,
		&rulesRaw,
		&camp.CreatedAt,
		&camp.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select campaign: %w", err)
	}
	if len(rulesRaw) > 0 {
		if err = json.Unmarshal(rulesRaw, &camp.Rules); err != nil {
			return nil, fmt.Errorf("decode sampling rules: %w", err)
		}
	}
	return &camp, nil
}

// UpdateCampaignRules replaces the stored rule list.
func (r *TrackerRepository) UpdateCampaignRules(ctx context.Context, campaignID int64, rules []domain.SamplingRule) error {
	if rules == nil {
		rules = []domain.SamplingRule{}
	}
	raw, err := json.Marshal(rules)
	if err != nil {
		return fmt.Errorf("encode sampling rules: %w", err)
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET sampling_rules = $1, updated_at = now() WHERE campaign_id = $2`,
		raw, campaignID)
	if err != nil {
		return fmt.Errorf("update sampling rules: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d: %w", campaignID, domain.ErrNotFound)
	}
	return nil
}

// FindPublisherByRef resolves a publisher by numeric id or external
// reference id.
func (r *TrackerRepository) FindPublisherByRef(ctx context.Context, ref string) (*domain.Publisher, error) {
	query := `SELECT id, reference_id, name, email, status, postback_url, created_at, updated_at
              FROM publishers WHERE reference_id = $1`
	args := []any{ref}
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		query = `SELECT id, reference_id, name, email, status, postback_url, created_at, updated_at
                 FROM publishers WHERE id = $1 OR reference_id = $2`
		args = []any{id, ref}
	}

	var pub domain.Publisher
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&pub.ID,
		&pub.ReferenceID,
		&pub.Name,
		&pub.Email,
		&pub.Status,
		&pub.PostbackURL,
		&pub.CreatedAt,
		&pub.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select publisher: %w", err)
	}
	return &pub, nil
}

// CreateClick stores one click record.
func (r *TrackerRepository) CreateClick(ctx context.Context, click *domain.Click) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO clicks
            (click_id, campaign_id, publisher_id, source, gaid, idfa,
             app_name, p1, p2, ip_address, user_agent)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at`,
		click.ClickID, click.CampaignID, click.PublisherID, click.Source,
		click.GAID, click.IDFA, click.AppName, click.P1, click.P2,
		click.IPAddress, click.UserAgent,
	).Scan(&click.ID, &click.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert click: %w", err)
	}
	return nil
}

// FindClickByID looks a click up by its public identifier.
func (r *TrackerRepository) FindClickByID(ctx context.Context, clickID string) (*domain.Click, error) {
	var click domain.Click
	err := r.pool.QueryRow(ctx, `
        SELECT id, click_id, campaign_id, publisher_id, source, gaid, idfa,
               app_name, p1, p2, ip_address, user_agent, created_at
        FROM clicks WHERE click_id = $1`, clickID,
	).Scan(
		&click.ID, &click.ClickID, &click.CampaignID, &click.PublisherID,
		&click.Source, &click.GAID, &click.IDFA, &click.AppName,
		&click.P1, &click.P2, &click.IPAddress, &click.UserAgent,
		&click.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select click: %w", err)
	}
	return &click, nil
}

const conversionColumns = `
    id, click_id, campaign_id, publisher_id, source, payout, gaid, idfa,
    app_name, p1, p2, status, original_status, created_at, updated_at`

func scanConversion(row pgx.Row) (*domain.Conversion, error) {
	var conv domain.Conversion
	err := row.Scan(
		&conv.ID, &conv.ClickID, &conv.CampaignID, &conv.PublisherID,
		&conv.Source, &conv.Payout, &conv.GAID, &conv.IDFA, &conv.AppName,
		&conv.P1, &conv.P2, &conv.Status, &conv.OriginalStatus,
		&conv.CreatedAt, &conv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// FindConversionByClickID returns the conversion recorded for a click, if
// any.
func (r *TrackerRepository) FindConversionByClickID(ctx context.Context, clickID string) (*domain.Conversion, error) {
	conv, err := scanConversion(r.pool.QueryRow(ctx,
		`SELECT `+conversionColumns+` FROM conversions WHERE click_id = $1`, clickID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select conversion: %w", err)
	}
	return conv, nil
}

// CreateConversion inserts a conversion. The unique index on click_id turns
// a concurrent duplicate into domain.ErrDuplicate instead of a second row.
func (r *TrackerRepository) CreateConversion(ctx context.Context, conv *domain.Conversion) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO conversions
            (click_id, campaign_id, publisher_id, source, payout, gaid,
             idfa, app_name, p1, p2, status, original_status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`,
		conv.ClickID, conv.CampaignID, conv.PublisherID, conv.Source,
		conv.Payout, conv.GAID, conv.IDFA, conv.AppName, conv.P1, conv.P2,
		conv.Status, conv.OriginalStatus,
	).Scan(&conv.ID, &conv.CreatedAt, &conv.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("click %s: %w", conv.ClickID, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert conversion: %w", err)
	}
	return nil
}

// UpdateConversionStatus rewrites status only. original_status is
// deliberately absent from the statement.
func (r *TrackerRepository) UpdateConversionStatus(ctx context.Context, id int64, status domain.ConversionStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE conversions SET status = $1, updated_at = now() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("update conversion status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("conversion %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListConversionsByCampaign returns a campaign's conversions in stable
// creation order. The secondary id sort pins ties on created_at so the
// reprocessor always sees the same order.
func (r *TrackerRepository) ListConversionsByCampaign(ctx context.Context, campaignID int64) ([]domain.Conversion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+conversionColumns+` FROM conversions
         WHERE campaign_id = $1 ORDER BY created_at ASC, id ASC`, campaignID)
	if err != nil {
		return nil, fmt.Errorf("select conversions: %w", err)
	}
	convs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Conversion, error) {
		conv, err := scanConversion(row)
		if err != nil {
			return domain.Conversion{}, err
		}
		return *conv, nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect conversions: %w", err)
	}
	return convs, nil
}

// GetPostbackConfig reads the singleton upstream postback setting.
func (r *TrackerRepository) GetPostbackConfig(ctx context.Context) (*domain.PostbackConfig, error) {
	var cfg domain.PostbackConfig
	err := r.pool.QueryRow(ctx,
		`SELECT id, url, updated_at FROM postback_config ORDER BY id LIMIT 1`,
	).Scan(&cfg.ID, &cfg.URL, &cfg.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select postback config: %w", err)
	}
	return &cfg, nil
}

// SavePostbackConfig upserts the singleton upstream postback setting.
func (r *TrackerRepository) SavePostbackConfig(ctx context.Context, url string) (*domain.PostbackConfig, error) {
	var cfg domain.PostbackConfig
	err := r.pool.QueryRow(ctx, `
        UPDATE postback_config SET url = $1, updated_at = now()
        WHERE id = (SELECT id FROM postback_config ORDER BY id LIMIT 1)
        RETURNING id, url, updated_at`, url,
	).Scan(&cfg.ID, &cfg.URL, &cfg.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		err = r.pool.QueryRow(ctx,
			`INSERT INTO postback_config (url) VALUES ($1) RETURNING id, url, updated_at`, url,
		).Scan(&cfg.ID, &cfg.URL, &cfg.UpdatedAt)
	}
	if err != nil {
		return nil, fmt.Errorf("save postback config: %w", err)
	}
	return &cfg, nil
}

// GetStats aggregates clicks and conversions for a period, optionally for a
// single campaign.
func (r *TrackerRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	var stats port.StatsResp

	clickQuery := `SELECT count(*) FROM clicks WHERE created_at BETWEEN $1 AND $2`
	convQuery := `
        SELECT count(*),
               count(*) FILTER (WHERE status = 'sampled'),
               count(*) FILTER (WHERE status = 'approved'),
               COALESCE(sum(payout) FILTER (WHERE status = 'approved'), 0)
        FROM conversions WHERE created_at BETWEEN $1 AND $2`
	args := []any{req.From, req.To}
	if req.CampaignID != nil {
		clickQuery += ` AND campaign_id = $3`
		convQuery += ` AND campaign_id = $3`
		args = append(args, *req.CampaignID)
	}

	if err := r.pool.QueryRow(ctx, clickQuery, args...).Scan(&stats.Clicks); err != nil {
		return nil, fmt.Errorf("count clicks: %w", err)
	}
	if err := r.pool.QueryRow(ctx, convQuery, args...).Scan(
		&stats.Conversions, &stats.Sampled, &stats.Approved, &stats.Payout); err != nil {
		return nil, fmt.Errorf("aggregate conversions: %w", err)
	}
	return &stats, nil
}
