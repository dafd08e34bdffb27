package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/lorenzapy/brandsite/internal/model"
)

const teamImageColumns = `id, image_url, alt_text_es, alt_text_pt, order_index, active, created_at`

// ListTeamImages returns all team images ordered by order_index.
func (q *Queries) ListTeamImages(ctx context.Context) ([]model.TeamImage, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+teamImageColumns+` FROM team_images ORDER BY order_index`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTeamImages(rows)
}

// ListActiveTeamImages returns active team images ordered by order_index.
func (q *Queries) ListActiveTeamImages(ctx context.Context) ([]model.TeamImage, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+teamImageColumns+` FROM team_images WHERE active = 1 ORDER BY order_index`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTeamImages(rows)
}

// GetTeamImageByID returns the team image with the given id.
func (q *Queries) GetTeamImageByID(ctx context.Context, id int64) (model.TeamImage, error) {
	var t model.TeamImage
	err := q.db.QueryRowContext(ctx,
		`SELECT `+teamImageColumns+` FROM team_images WHERE id = ?`, id).
		Scan(&t.ID, &t.ImageURL, &t.AltTextES, &t.AltTextPT, &t.OrderIndex, &t.Active, &t.CreatedAt)
	return t, err
}

// CreateTeamImageParams holds the fields for CreateTeamImage.
type CreateTeamImageParams struct {
	ImageURL   string
	AltTextES  string
	AltTextPT  string
	OrderIndex int64
	Active     bool
	CreatedAt  time.Time
}

// CreateTeamImage inserts a new team image and returns it.
func (q *Queries) CreateTeamImage(ctx context.Context, arg CreateTeamImageParams) (model.TeamImage, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO team_images (image_url, alt_text_es, alt_text_pt, order_index, active, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		arg.ImageURL, arg.AltTextES, arg.AltTextPT, arg.OrderIndex, arg.Active, arg.CreatedAt)
	if err != nil {
		return model.TeamImage{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.TeamImage{}, err
	}
	return q.GetTeamImageByID(ctx, id)
}

// SetTeamImageActive updates only the active flag of a team image.
func (q *Queries) SetTeamImageActive(ctx context.Context, id int64, active bool) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE team_images SET active = ? WHERE id = ?`, active, id)
	return err
}

// DeleteTeamImage permanently removes a team image.
func (q *Queries) DeleteTeamImage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM team_images WHERE id = ?`, id)
	return err
}

// CountTeamImages returns the number of team image rows.
func (q *Queries) CountTeamImages(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM team_images`).Scan(&n)
	return n, err
}

func collectTeamImages(rows *sql.Rows) ([]model.TeamImage, error) {
	var items []model.TeamImage
	for rows.Next() {
		var t model.TeamImage
		if err := rows.Scan(&t.ID, &t.ImageURL, &t.AltTextES, &t.AltTextPT,
			&t.OrderIndex, &t.Active, &t.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}
