package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lorenzapy/brandsite/internal/model"
)

// --- site_content ---

// ListSiteContent returns all content items ordered by key.
func (q *Queries) ListSiteContent(ctx context.Context) ([]model.SiteContent, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, key, value_es, value_pt, created_at, updated_at
		 FROM site_content ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSiteContent(rows)
}

// GetSiteContentByKeys returns the content items whose key is in keys.
// Missing keys simply produce no row; callers merge over defaults.
func (q *Queries) GetSiteContentByKeys(ctx context.Context, keys []string) ([]model.SiteContent, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	placeholders := strings.Repeat("?,", len(keys))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	rows, err := q.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT id, key, value_es, value_pt, created_at, updated_at
		 FROM site_content WHERE key IN (%s)`, placeholders), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSiteContent(rows)
}

// UpsertSiteContentParams holds the fields for UpsertSiteContent.
type UpsertSiteContentParams struct {
	Key       string
	ValueES   string
	ValuePT   string
	UpdatedAt time.Time
}

// UpsertSiteContent inserts a content item or, if the key already exists,
// updates its values in place. Idempotent for unchanged values.
func (q *Queries) UpsertSiteContent(ctx context.Context, arg UpsertSiteContentParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO site_content (key, value_es, value_pt, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   value_es = excluded.value_es,
		   value_pt = excluded.value_pt,
		   updated_at = excluded.updated_at`,
		arg.Key, arg.ValueES, arg.ValuePT, arg.UpdatedAt, arg.UpdatedAt)
	return err
}

func collectSiteContent(rows *sql.Rows) ([]model.SiteContent, error) {
	var items []model.SiteContent
	for rows.Next() {
		var c model.SiteContent
		if err := rows.Scan(&c.ID, &c.Key, &c.ValueES, &c.ValuePT, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// --- contact_info ---

// GetContactInfo returns the settings singleton row.
// Returns sql.ErrNoRows before the first save.
func (q *Queries) GetContactInfo(ctx context.Context) (model.ContactInfo, error) {
	var c model.ContactInfo
	err := q.db.QueryRowContext(ctx,
		`SELECT id, whatsapp_number, usdt_wallet, usdt_network, sells_usdt, hero_image_url, created_at, updated_at
		 FROM contact_info LIMIT 1`).
		Scan(&c.ID, &c.WhatsappNumber, &c.USDTWallet, &c.USDTNetwork, &c.SellsUSDT,
			&c.HeroImageURL, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// SaveContactInfoParams holds the fields for SaveContactInfo.
type SaveContactInfoParams struct {
	WhatsappNumber string
	USDTWallet     string
	USDTNetwork    string
	SellsUSDT      bool
	HeroImageURL   string
	UpdatedAt      time.Time
}

// SaveContactInfo upserts the settings singleton. The unique singleton
// column guarantees at most one row even under concurrent saves.
func (q *Queries) SaveContactInfo(ctx context.Context, arg SaveContactInfoParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO contact_info (singleton, whatsapp_number, usdt_wallet, usdt_network, sells_usdt, hero_image_url, created_at, updated_at)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(singleton) DO UPDATE SET
		   whatsapp_number = excluded.whatsapp_number,
		   usdt_wallet = excluded.usdt_wallet,
		   usdt_network = excluded.usdt_network,
		   sells_usdt = excluded.sells_usdt,
		   hero_image_url = excluded.hero_image_url,
		   updated_at = excluded.updated_at`,
		arg.WhatsappNumber, arg.USDTWallet, arg.USDTNetwork, arg.SellsUSDT,
		arg.HeroImageURL, arg.UpdatedAt, arg.UpdatedAt)
	return err
}

// CountContactInfo returns the number of settings rows (0 or 1).
func (q *Queries) CountContactInfo(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_info`).Scan(&n)
	return n, err
}

// --- career_highlights ---

// ListCareerHighlights returns all highlights ordered by order_index.
func (q *Queries) ListCareerHighlights(ctx context.Context) ([]model.CareerHighlight, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, title_es, title_pt, description_es, description_pt, icon, order_index, created_at
		 FROM career_highlights ORDER BY order_index`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.CareerHighlight
	for rows.Next() {
		var h model.CareerHighlight
		if err := rows.Scan(&h.ID, &h.TitleES, &h.TitlePT, &h.DescriptionES, &h.DescriptionPT,
			&h.Icon, &h.OrderIndex, &h.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}
