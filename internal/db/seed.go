package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"trackpanel/internal/core/domain"
)

// Seed inserts demo data into the trackpanel database: a few publishers,
// campaigns with sampling rules, and a spread of clicks.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// publishers
	for i := 1; i <= 3; i++ {
		_, err := db.Exec(ctx, `INSERT INTO publishers
    (id, reference_id, name, email, status, postback_url, created_at, updated_at)
VALUES ($1,$2,$3,$4,'Active',$5,now(),now()) ON CONFLICT DO NOTHING`,
			i,
			fmt.Sprintf("pub-ref-%d", i),
			fmt.Sprintf("Publisher %d", i),
			fmt.Sprintf("publisher%d@example.com", i),
			fmt.Sprintf("https://pub%d.example.com/postback?click_id={click_id}&payout={payout}", i))
		if err != nil {
			return err
		}
	}

	// campaigns with a 50% sampling rule for publisher 2
	for i := 1; i <= 3; i++ {
		rules := []domain.SamplingRule{{
			PublisherID:   "2",
			PublisherName: "Publisher 2",
			SubIDsMode:    domain.SubIDsAll,
			Mode:          domain.SamplingPercentage,
			Value:         50,
			GoalName:      "Gross Conversions",
		}}
		rulesJSON, _ := json.Marshal(rules)
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (campaign_id, title, description, default_url, default_goal_name, status,
     sampling_rules, created_at, updated_at)
VALUES ($1,$2,$3,$4,'Gross Conversions','Active',$5,now(),now())
ON CONFLICT DO NOTHING`,
			i,
			fmt.Sprintf("Demo Offer %d", i),
			fmt.Sprintf("Seeded demo campaign %d", i),
			fmt.Sprintf("https://offers.example.com/%d?click_id={click_id}&source={source}", i),
			rulesJSON)
		if err != nil {
			return err
		}
	}

	// clicks across campaigns and publishers
	for i := 0; i < 200; i++ {
		campaignID := int64(r.Intn(3) + 1)
		publisherID := fmt.Sprintf("%d", r.Intn(3)+1)
		source := fmt.Sprintf("sub%d", r.Intn(5)+1)
		_, err := db.Exec(ctx, `INSERT INTO clicks
    (click_id, campaign_id, publisher_id, source, ip_address, user_agent, created_at)
VALUES ($1,$2,$3,$4,$5,$6,now()) ON CONFLICT DO NOTHING`,
			uuid.NewString(), campaignID, publisherID, source,
			fmt.Sprintf("10.0.0.%d", r.Intn(250)+1), "seed/1.0")
		if err != nil {
			return err
		}
	}
	return nil
}
