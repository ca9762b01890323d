package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo plans, campaigns and funding into the database. It is
// safe to run more than once.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	plans := []struct {
		id      int64
		name    string
		cpm     int64
		cadence string
	}{
		{1, "One-time starter", 150, "one_time"},
		{2, "Monthly standard", 120, "monthly"},
	}
	for _, p := range plans {
		_, err := db.Exec(ctx, `INSERT INTO plans (id, name, cpm, cadence)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, p.id, p.name, p.cpm, p.cadence)
		if err != nil {
			return fmt.Errorf("seed plan %d: %w", p.id, err)
		}
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	campaigns := []string{"great_campaign", "awesome_campaign", "amazing_campaign", "draft_campaign", "paused_campaign"}
	for i, uniqueID := range campaigns {
		id := int64(i + 1)
		planID := plans[i%len(plans)].id
		start := today.AddDate(0, 0, -r.Intn(10))
		var end *time.Time
		if planID == 1 {
			e := today.AddDate(0, 0, 15+r.Intn(30))
			end = &e
		}
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, unique_id, organization_id, name, plan_id, approved, enabled, draft, removed, start_date, end_date)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,false,$9,$10) ON CONFLICT DO NOTHING`,
			id, uniqueID, id, fmt.Sprintf("Campaign %d", id), planID,
			uniqueID != "draft_campaign", uniqueID != "paused_campaign", uniqueID == "draft_campaign",
			start, end)
		if err != nil {
			return fmt.Errorf("seed campaign %s: %w", uniqueID, err)
		}

		var funded int64
		if err = db.QueryRow(ctx, `SELECT funded_amount FROM campaigns WHERE id = $1`, id).Scan(&funded); err != nil {
			return err
		}
		if funded > 0 {
			continue
		}
		amount := int64(5000 + r.Intn(20000))
		_, err = db.Exec(ctx, `INSERT INTO campaign_funding_history (campaign_id, amount, payment_date, payment_confirmation)
VALUES ($1,$2,now(),$3)`, id, amount, uuid.NewString())
		if err != nil {
			return fmt.Errorf("seed funding %s: %w", uniqueID, err)
		}
		if _, err = db.Exec(ctx, `UPDATE campaigns SET funded_amount = funded_amount + $1 WHERE id = $2`, amount, id); err != nil {
			return err
		}
	}

	// explicit ids above leave the sequences behind
	for _, table := range []string{"plans", "campaigns"} {
		_, err := db.Exec(ctx, fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))`, table, table))
		if err != nil {
			return err
		}
	}
	return nil
}
