package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lorenzapy/brandsite/internal/auth"
	"github.com/lorenzapy/brandsite/internal/model"
)

// SeedParams configures the initial data load.
type SeedParams struct {
	AdminEmail    string
	AdminPassword string
}

// Seed loads initial data into an empty database: the admin user, the
// editable site copy rows, the default career highlights and testimonials,
// and the contact settings row. Every step is skipped when data already
// exists, so seeding is safe to run on every boot.
func Seed(ctx context.Context, q *Queries, logger *slog.Logger, params SeedParams) error {
	if err := seedAdminUser(ctx, q, logger, params); err != nil {
		return err
	}
	if err := seedSiteContent(ctx, q); err != nil {
		return err
	}
	if err := seedCareerHighlights(ctx, q); err != nil {
		return err
	}
	if err := seedTestimonials(ctx, q); err != nil {
		return err
	}
	return seedContactInfo(ctx, q, logger)
}

func seedAdminUser(ctx context.Context, q *Queries, logger *slog.Logger, params SeedParams) error {
	_, err := q.GetUserByEmail(ctx, params.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking admin user: %w", err)
	}

	if params.AdminPassword == "" {
		return errors.New("seeding requires BRAND_ADMIN_PASSWORD to create the admin user")
	}
	hash, err := auth.HashPassword(params.AdminPassword)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}
	now := time.Now().UTC()
	user, err := q.CreateUser(ctx, CreateUserParams{
		Email:        params.AdminEmail,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		Name:         "Admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}
	logger.Info("seeded admin user", "email", user.Email)
	return nil
}

// Editable copy rows. Values match the compiled-in fallbacks so a fresh
// site renders identically before and after the first admin edit.
var seedContent = []struct {
	key, valueES, valuePT string
}{
	{"hero_name", "Lorenza Gonzalez", "Lorenza Gonzalez"},
	{"hero_subtitle",
		"Líder en mercadeo en red con +20 años de experiencia. Resultados comprobados.",
		"Líder em marketing de rede com +20 anos de experiência. Resultados comprovados."},
	{"about_title", "Sobre Mí", "Sobre Mim"},
	{"about_subtitle", "Trayectoria y Liderazgo", "Trajetória e Liderança"},
	{"about_description", "", ""},
}

func seedSiteContent(ctx context.Context, q *Queries) error {
	now := time.Now().UTC()
	for _, c := range seedContent {
		// INSERT OR IGNORE keeps admin edits intact across reseeds.
		_, err := q.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO site_content (key, value_es, value_pt, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?)`,
			c.key, c.valueES, c.valuePT, now, now)
		if err != nil {
			return fmt.Errorf("seeding site content %q: %w", c.key, err)
		}
	}
	return nil
}

func seedCareerHighlights(ctx context.Context, q *Queries) error {
	var n int64
	if err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM career_highlights`).Scan(&n); err != nil {
		return fmt.Errorf("counting career highlights: %w", err)
	}
	if n > 0 {
		return nil
	}

	highlights := []struct {
		icon, titleES, titlePT, descES, descPT string
	}{
		{model.IconAward, "Experiencia Comprobada", "Experiência Comprovada",
			"Más de 10 años transformando negocios y creando oportunidades de crecimiento.",
			"Mais de 10 anos transformando negócios e criando oportunidades de crescimento."},
		{model.IconUsers, "Equipo de Éxito", "Equipe de Sucesso",
			"Liderando equipos comprometidos hacia metas extraordinarias.",
			"Liderando equipes comprometidas rumo a metas extraordinárias."},
		{model.IconTrending, "Resultados Reales", "Resultados Reais",
			"Estrategias probadas que generan crecimiento sostenible.",
			"Estratégias comprovadas que geram crescimento sustentável."},
	}
	now := time.Now().UTC()
	for i, h := range highlights {
		_, err := q.db.ExecContext(ctx,
			`INSERT INTO career_highlights (title_es, title_pt, description_es, description_pt, icon, order_index, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			h.titleES, h.titlePT, h.descES, h.descPT, h.icon, int64(i+1), now)
		if err != nil {
			return fmt.Errorf("seeding career highlight %q: %w", h.titleES, err)
		}
	}
	return nil
}

func seedTestimonials(ctx context.Context, q *Queries) error {
	n, err := q.CountTestimonials(ctx)
	if err != nil {
		return fmt.Errorf("counting testimonials: %w", err)
	}
	if n > 0 {
		return nil
	}

	now := time.Now().UTC()
	for i, t := range model.DefaultTestimonials() {
		_, err := q.CreateTestimonial(ctx, CreateTestimonialParams{
			Name:       t.Name,
			RoleES:     t.RoleES,
			RolePT:     t.RolePT,
			TextES:     t.TextES,
			TextPT:     t.TextPT,
			Rating:     t.Rating,
			OrderIndex: int64(i),
			Active:     true,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("seeding testimonial %q: %w", t.Name, err)
		}
	}
	return nil
}

func seedContactInfo(ctx context.Context, q *Queries, logger *slog.Logger) error {
	n, err := q.CountContactInfo(ctx)
	if err != nil {
		return fmt.Errorf("counting contact info: %w", err)
	}
	if n > 0 {
		return nil
	}

	def := model.DefaultContactInfo()
	err = q.SaveContactInfo(ctx, SaveContactInfoParams{
		WhatsappNumber: def.WhatsappNumber,
		USDTWallet:     def.USDTWallet,
		USDTNetwork:    def.USDTNetwork,
		SellsUSDT:      def.SellsUSDT,
		UpdatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("seeding contact info: %w", err)
	}
	logger.Info("seeded default contact settings")
	return nil
}
