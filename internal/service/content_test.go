package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/lorenzapy/brandsite/internal/cache"
	"github.com/lorenzapy/brandsite/internal/i18n"
	"github.com/lorenzapy/brandsite/internal/model"
	"github.com/lorenzapy/brandsite/internal/store"
	"github.com/lorenzapy/brandsite/internal/testutil"
)

func TestMain(m *testing.M) {
	if err := i18n.Init(nil); err != nil {
		panic(err)
	}
	m.Run()
}

// asSection unwraps a section value regardless of whether it came straight
// from a builder or took a round trip through the JSON cache.
func asSection[T any](t *testing.T, data any) T {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshaling section: %v", err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshaling section: %v", err)
	}
	return out
}

func TestSection_Unknown(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	svc := NewContentService(db, nil, 0, testutil.TestLogger())

	_, err := svc.Section(context.Background(), "pricing", "es")
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("Section(pricing) err = %v, want ErrUnknownSection", err)
	}
}

func TestSection_HeroDefaults(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	svc := NewContentService(db, nil, 0, testutil.TestLogger())
	ctx := context.Background()

	data, err := svc.Section(ctx, SectionHero, "es")
	if err != nil {
		t.Fatalf("Section(hero, es): %v", err)
	}
	hero := asSection[HeroSection](t, data)
	if hero.Name != model.DefaultHeroName {
		t.Errorf("Name = %q, want default", hero.Name)
	}
	if hero.Subtitle != model.DefaultHeroSubtitleES {
		t.Errorf("Subtitle = %q, want Spanish default", hero.Subtitle)
	}
	if len(hero.SliderImages) == 0 {
		t.Error("SliderImages should not be empty on a fresh database")
	}

	data, err = svc.Section(ctx, SectionHero, "pt")
	if err != nil {
		t.Fatalf("Section(hero, pt): %v", err)
	}
	hero = asSection[HeroSection](t, data)
	if hero.Subtitle != model.DefaultHeroSubtitlePT {
		t.Errorf("Subtitle = %q, want Portuguese default", hero.Subtitle)
	}
}

func TestSection_HeroMergesContent(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	q := store.New(db)

	err := q.UpsertSiteContent(ctx, store.UpsertSiteContentParams{
		Key:       "hero_name",
		ValueES:   "Nombre Editado",
		ValuePT:   "Nome Editado",
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("UpsertSiteContent: %v", err)
	}

	svc := NewContentService(db, nil, 0, testutil.TestLogger())

	data, err := svc.Section(ctx, SectionHero, "pt")
	if err != nil {
		t.Fatalf("Section(hero, pt): %v", err)
	}
	hero := asSection[HeroSection](t, data)
	if hero.Name != "Nome Editado" {
		t.Errorf("Name = %q, want stored Portuguese value", hero.Name)
	}
	// Untouched fields keep their defaults
	if hero.Subtitle != model.DefaultHeroSubtitlePT {
		t.Errorf("Subtitle = %q, want default", hero.Subtitle)
	}
}

func TestSection_UnknownLanguageFallsBack(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	svc := NewContentService(db, nil, 0, testutil.TestLogger())

	data, err := svc.Section(context.Background(), SectionHero, "en")
	if err != nil {
		t.Fatalf("Section(hero, en): %v", err)
	}
	hero := asSection[HeroSection](t, data)
	if hero.Subtitle != model.DefaultHeroSubtitleES {
		t.Errorf("unsupported language should fall back to Spanish, got %q", hero.Subtitle)
	}
}

func TestSection_TestimonialsDefaults(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	svc := NewContentService(db, nil, 0, testutil.TestLogger())

	data, err := svc.Section(context.Background(), SectionTestimonials, "es")
	if err != nil {
		t.Fatalf("Section(testimonials, es): %v", err)
	}
	section := asSection[TestimonialsSection](t, data)
	if len(section.Items) != len(model.DefaultTestimonials()) {
		t.Errorf("Items = %d, want the compiled-in defaults", len(section.Items))
	}
	if len(section.Stats) != 3 {
		t.Errorf("Stats = %d, want 3", len(section.Stats))
	}
}

func TestSection_TestimonialRatingClamped(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	q := store.New(db)
	now := time.Now().UTC()

	// Ratings outside 1..5 can predate the server-side clamp.
	if _, err := db.ExecContext(ctx,
		`INSERT INTO testimonials (name, role_es, role_pt, text_es, text_pt, image_url, rating, order_index, active, created_at, updated_at)
		 VALUES ('x', '', '', '', '', '', 9, 0, 1, ?, ?)`, now, now); err != nil {
		t.Fatalf("inserting raw testimonial: %v", err)
	}
	if _, err := q.CountTestimonials(ctx); err != nil {
		t.Fatalf("CountTestimonials: %v", err)
	}

	svc := NewContentService(db, nil, 0, testutil.TestLogger())
	data, err := svc.Section(ctx, SectionTestimonials, "es")
	if err != nil {
		t.Fatalf("Section(testimonials, es): %v", err)
	}
	section := asSection[TestimonialsSection](t, data)
	if len(section.Items) != 1 {
		t.Fatalf("Items = %d, want 1", len(section.Items))
	}
	if section.Items[0].Rating != model.RatingMax {
		t.Errorf("Rating = %d, want clamped to %d", section.Items[0].Rating, model.RatingMax)
	}
}

func TestSection_TeamDemoFallback(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	svc := NewContentService(db, nil, 0, testutil.TestLogger())

	data, err := svc.Section(context.Background(), SectionTeam, "es")
	if err != nil {
		t.Fatalf("Section(team, es): %v", err)
	}
	section := asSection[TeamSection](t, data)
	if len(section.Images) != len(teamDemoImages) {
		t.Errorf("Images = %d, want demo carousel of %d", len(section.Images), len(teamDemoImages))
	}
}

func TestSection_CacheAndInvalidate(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	backend := cache.NewMemoryCache(cache.MemoryCacheOptions{
		DefaultTTL:      time.Minute,
		MaxSize:         100,
		CleanupInterval: time.Hour,
	})
	defer func() { _ = backend.Close() }()

	ctx := context.Background()
	q := store.New(db)
	svc := NewContentService(db, backend, time.Minute, testutil.TestLogger())

	data, err := svc.Section(ctx, SectionHero, "es")
	if err != nil {
		t.Fatalf("Section (cold): %v", err)
	}
	if asSection[HeroSection](t, data).Name != model.DefaultHeroName {
		t.Fatal("expected default name before any writes")
	}

	err = q.UpsertSiteContent(ctx, store.UpsertSiteContentParams{
		Key:       "hero_name",
		ValueES:   "Editado",
		ValuePT:   "Editado",
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("UpsertSiteContent: %v", err)
	}

	// Still served from cache until invalidated
	data, err = svc.Section(ctx, SectionHero, "es")
	if err != nil {
		t.Fatalf("Section (cached): %v", err)
	}
	if asSection[HeroSection](t, data).Name != model.DefaultHeroName {
		t.Fatal("cached section should not reflect the write yet")
	}

	svc.Invalidate(ctx, SectionHero)

	data, err = svc.Section(ctx, SectionHero, "es")
	if err != nil {
		t.Fatalf("Section (after invalidate): %v", err)
	}
	if asSection[HeroSection](t, data).Name != "Editado" {
		t.Fatal("invalidated section should reflect the write")
	}
}

func TestSection_StaticSections(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	svc := NewContentService(db, nil, 0, testutil.TestLogger())
	ctx := context.Background()

	events, err := svc.Section(ctx, SectionEvents, "pt")
	if err != nil {
		t.Fatalf("Section(events, pt): %v", err)
	}
	eventsSection := asSection[EventsSection](t, events)
	if len(eventsSection.Events) == 0 || len(eventsSection.Stats) != 4 {
		t.Errorf("unexpected events section: %+v", eventsSection)
	}

	projects, err := svc.Section(ctx, SectionProjects, "es")
	if err != nil {
		t.Fatalf("Section(projects, es): %v", err)
	}
	projectsSection := asSection[ProjectsSection](t, projects)
	if projectsSection.Main.Name != "Solar Group" {
		t.Errorf("Main.Name = %q, want Solar Group", projectsSection.Main.Name)
	}
	if len(projectsSection.Others) == 0 || len(projectsSection.Digital) == 0 {
		t.Error("projects section should include past and digital ventures")
	}
}
