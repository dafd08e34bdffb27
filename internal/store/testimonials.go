package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/lorenzapy/brandsite/internal/model"
)

const testimonialColumns = `id, name, role_es, role_pt, text_es, text_pt, image_url, rating, order_index, active, created_at, updated_at`

// ListTestimonials returns all testimonials ordered by order_index.
func (q *Queries) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials ORDER BY order_index`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTestimonials(rows)
}

// ListActiveTestimonials returns active testimonials ordered by order_index.
func (q *Queries) ListActiveTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE active = 1 ORDER BY order_index`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTestimonials(rows)
}

// GetTestimonialByID returns the testimonial with the given id.
func (q *Queries) GetTestimonialByID(ctx context.Context, id int64) (model.Testimonial, error) {
	var t model.Testimonial
	err := q.db.QueryRowContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.RoleES, &t.RolePT, &t.TextES, &t.TextPT, &t.ImageURL,
			&t.Rating, &t.OrderIndex, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// CreateTestimonialParams holds the fields for CreateTestimonial.
type CreateTestimonialParams struct {
	Name       string
	RoleES     string
	RolePT     string
	TextES     string
	TextPT     string
	ImageURL   string
	Rating     int64
	OrderIndex int64
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateTestimonial inserts a new testimonial and returns it.
func (q *Queries) CreateTestimonial(ctx context.Context, arg CreateTestimonialParams) (model.Testimonial, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO testimonials (name, role_es, role_pt, text_es, text_pt, image_url, rating, order_index, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Name, arg.RoleES, arg.RolePT, arg.TextES, arg.TextPT, arg.ImageURL,
		arg.Rating, arg.OrderIndex, arg.Active, arg.CreatedAt, arg.UpdatedAt)
	if err != nil {
		return model.Testimonial{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Testimonial{}, err
	}
	return q.GetTestimonialByID(ctx, id)
}

// UpdateTestimonialParams holds the fields for UpdateTestimonial.
type UpdateTestimonialParams struct {
	ID         int64
	Name       string
	RoleES     string
	RolePT     string
	TextES     string
	TextPT     string
	ImageURL   string
	Rating     int64
	OrderIndex int64
	Active     bool
	UpdatedAt  time.Time
}

// UpdateTestimonial updates an existing testimonial in place.
func (q *Queries) UpdateTestimonial(ctx context.Context, arg UpdateTestimonialParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE testimonials SET
		   name = ?, role_es = ?, role_pt = ?, text_es = ?, text_pt = ?,
		   image_url = ?, rating = ?, order_index = ?, active = ?, updated_at = ?
		 WHERE id = ?`,
		arg.Name, arg.RoleES, arg.RolePT, arg.TextES, arg.TextPT, arg.ImageURL,
		arg.Rating, arg.OrderIndex, arg.Active, arg.UpdatedAt, arg.ID)
	return err
}

// SetTestimonialActive updates only the active flag of a testimonial.
func (q *Queries) SetTestimonialActive(ctx context.Context, id int64, active bool) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE testimonials SET active = ? WHERE id = ?`, active, id)
	return err
}

// DeleteTestimonial permanently removes a testimonial.
func (q *Queries) DeleteTestimonial(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = ?`, id)
	return err
}

// CountTestimonials returns the number of testimonial rows.
func (q *Queries) CountTestimonials(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM testimonials`).Scan(&n)
	return n, err
}

func collectTestimonials(rows *sql.Rows) ([]model.Testimonial, error) {
	var items []model.Testimonial
	for rows.Next() {
		var t model.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.RoleES, &t.RolePT, &t.TextES, &t.TextPT,
			&t.ImageURL, &t.Rating, &t.OrderIndex, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}
