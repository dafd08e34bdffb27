package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lorenzapy/brandsite/internal/cache"
	"github.com/lorenzapy/brandsite/internal/i18n"
	"github.com/lorenzapy/brandsite/internal/model"
	"github.com/lorenzapy/brandsite/internal/store"
)

// Section names served by the public API.
const (
	SectionHero         = "hero"
	SectionAbout        = "about"
	SectionContact      = "contact"
	SectionTeam         = "team"
	SectionTestimonials = "testimonials"
	SectionEvents       = "events"
	SectionProjects     = "projects"
)

// ErrUnknownSection is returned for section names the service does not serve.
var ErrUnknownSection = errors.New("unknown section")

// HeroSection is the hero block: headline copy plus the rotating imagery.
type HeroSection struct {
	Name         string   `json:"name"`
	Subtitle     string   `json:"subtitle"`
	HeroImageURL string   `json:"hero_image_url,omitempty"`
	SliderImages []string `json:"slider_images"`
}

// HighlightItem is one card in the about section.
type HighlightItem struct {
	ID          int64  `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AboutSection is the about block: editable copy plus career highlights.
type AboutSection struct {
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle"`
	Description string          `json:"description,omitempty"`
	Highlights  []HighlightItem `json:"highlights"`
}

// ContactSection is the contact block with the site-wide settings.
type ContactSection struct {
	WhatsappNumber  string `json:"whatsapp_number"`
	WhatsappMessage string `json:"whatsapp_message"`
	USDTWallet      string `json:"usdt_wallet,omitempty"`
	USDTNetwork     string `json:"usdt_network"`
	SellsUSDT       bool   `json:"sells_usdt"`
	HeroImageURL    string `json:"hero_image_url,omitempty"`
}

// TeamImageItem is one photo in the team carousel.
type TeamImageItem struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
	AltText  string `json:"alt_text"`
}

// TeamSection is the team block: carousel photos and the join CTA.
type TeamSection struct {
	Images          []TeamImageItem `json:"images"`
	WhatsappNumber  string          `json:"whatsapp_number"`
	WhatsappMessage string          `json:"whatsapp_message"`
}

// TestimonialItem is one localized testimonial.
type TestimonialItem struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Text   string `json:"text"`
	Rating int64  `json:"rating"`
}

// StatItem is a headline figure shown under a section.
type StatItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TestimonialsSection is the testimonials block.
type TestimonialsSection struct {
	Items []TestimonialItem `json:"items"`
	Stats []StatItem        `json:"stats"`
}

// EventItem is one card in the events gallery.
type EventItem struct {
	Image    string `json:"image"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Year     string `json:"year"`
}

// EventsSection is the events block: gallery cards plus headline figures.
type EventsSection struct {
	SliderImages []string    `json:"slider_images"`
	Events       []EventItem `json:"events"`
	Stats        []StatItem  `json:"stats"`
}

// ProjectStat is a headline figure for the main project.
type ProjectStat struct {
	Team string `json:"team"`
	Time string `json:"time"`
}

// MainProject is the flagship project card.
type MainProject struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Link        string      `json:"link"`
	Stats       ProjectStat `json:"stats"`
}

// SimpleProject is a named past project.
type SimpleProject struct {
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// DigitalProject is a digital venture with its outcome.
type DigitalProject struct {
	Name      string `json:"name"`
	Result    string `json:"result"`
	Highlight bool   `json:"highlight,omitempty"`
}

// ProjectsSection is the projects block.
type ProjectsSection struct {
	Main    MainProject      `json:"main"`
	Others  []SimpleProject  `json:"others"`
	Digital []DigitalProject `json:"digital"`
}

// ContentService assembles the public site sections. Every section merges
// database rows over compiled-in defaults, so a missing row, empty table, or
// (for testimonials) a missing table still yields a complete section.
type ContentService struct {
	queries *store.Queries
	cache   *cache.TypedCache[sectionPayload]
	logger  *slog.Logger
}

// sectionPayload wraps a section for caching; Data is one of the section
// structs above.
type sectionPayload struct {
	Section string `json:"section"`
	Lang    string `json:"lang"`
	Data    any    `json:"data"`
}

// NewContentService creates a content service. backend may be nil to disable
// caching.
func NewContentService(db *sql.DB, backend cache.Cache, ttl time.Duration, logger *slog.Logger) *ContentService {
	s := &ContentService{
		queries: store.New(db),
		logger:  logger,
	}
	if backend != nil {
		s.cache = cache.NewTypedCache[sectionPayload](backend, ttl)
	}
	return s
}

// Section returns the named section localized for lang.
func (s *ContentService) Section(ctx context.Context, section, lang string) (any, error) {
	lang = i18n.Normalize(lang)

	build, ok := s.builder(section)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	if s.cache == nil {
		return build(ctx, lang)
	}

	key := sectionCacheKey(section, lang)
	payload, err := s.cache.GetOrSet(ctx, key, func() (*sectionPayload, error) {
		data, err := build(ctx, lang)
		if err != nil {
			return nil, err
		}
		return &sectionPayload{Section: section, Lang: lang, Data: data}, nil
	})
	if err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// Invalidate drops the cached copies of a section in all languages. Called
// after admin writes so the public site picks up changes immediately.
func (s *ContentService) Invalidate(ctx context.Context, sections ...string) {
	if s.cache == nil {
		return
	}
	for _, section := range sections {
		for _, lang := range i18n.SupportedLanguages {
			_ = s.cache.Delete(ctx, sectionCacheKey(section, lang))
		}
	}
}

// InvalidateAll drops all cached sections.
func (s *ContentService) InvalidateAll(ctx context.Context) {
	s.Invalidate(ctx, SectionHero, SectionAbout, SectionContact, SectionTeam,
		SectionTestimonials, SectionEvents, SectionProjects)
}

func sectionCacheKey(section, lang string) string {
	return fmt.Sprintf("section:%s:%s", section, lang)
}

func (s *ContentService) builder(section string) (func(context.Context, string) (any, error), bool) {
	switch section {
	case SectionHero:
		return s.buildHero, true
	case SectionAbout:
		return s.buildAbout, true
	case SectionContact:
		return s.buildContact, true
	case SectionTeam:
		return s.buildTeam, true
	case SectionTestimonials:
		return s.buildTestimonials, true
	case SectionEvents:
		return s.buildEvents, true
	case SectionProjects:
		return s.buildProjects, true
	default:
		return nil, false
	}
}

// contentValues loads the requested keys and returns a lookup of localized
// values. Load failures are logged and produce an empty map, falling back to
// defaults.
func (s *ContentService) contentValues(ctx context.Context, lang string, keys ...string) map[string]string {
	values := make(map[string]string, len(keys))
	rows, err := s.queries.GetSiteContentByKeys(ctx, keys)
	if err != nil {
		s.logger.Warn("loading site content failed, using defaults", "category", "content", "error", err)
		return values
	}
	for _, row := range rows {
		if v := row.Value(lang); v != "" {
			values[row.Key] = v
		}
	}
	return values
}

// contactInfo loads the settings row, falling back to defaults when the row
// does not exist yet or the read fails.
func (s *ContentService) contactInfo(ctx context.Context) model.ContactInfo {
	info, err := s.queries.GetContactInfo(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("loading contact settings failed, using defaults", "category", "config", "error", err)
		}
		return model.DefaultContactInfo()
	}
	return info
}

// heroSliderImages is the static hero slider used until an uploaded hero
// image replaces it.
var heroSliderImages = []string{
	"/images/lorenzapy-consultora-negocios-1.jpg",
	"/images/lorenzapy-consultora-negocios-2.png",
	"/images/lorenzapy-consultora-negocios-3.jpg",
	"/images/lorenzapy-consultora-negocios-4.jpg",
	"/images/lorenzapy-consultora-negocios-5.jpg",
}

func (s *ContentService) buildHero(ctx context.Context, lang string) (any, error) {
	subtitle := model.DefaultHeroSubtitleES
	if lang == model.LangPT {
		subtitle = model.DefaultHeroSubtitlePT
	}

	hero := HeroSection{
		Name:         model.DefaultHeroName,
		Subtitle:     subtitle,
		SliderImages: heroSliderImages,
	}

	values := s.contentValues(ctx, lang, "hero_name", "hero_subtitle")
	if v, ok := values["hero_name"]; ok {
		hero.Name = v
	}
	if v, ok := values["hero_subtitle"]; ok {
		hero.Subtitle = v
	}

	if info := s.contactInfo(ctx); info.HeroImageURL != "" {
		hero.HeroImageURL = info.HeroImageURL
	}

	return hero, nil
}

func (s *ContentService) buildAbout(ctx context.Context, lang string) (any, error) {
	about := AboutSection{
		Title:    i18n.T(lang, "about.title"),
		Subtitle: i18n.T(lang, "about.subtitle"),
	}

	values := s.contentValues(ctx, lang, "about_title", "about_subtitle", "about_description")
	if v, ok := values["about_title"]; ok {
		about.Title = v
	}
	if v, ok := values["about_subtitle"]; ok {
		about.Subtitle = v
	}
	if v, ok := values["about_description"]; ok {
		about.Description = v
	}

	highlights, err := s.queries.ListCareerHighlights(ctx)
	if err != nil {
		s.logger.Warn("loading career highlights failed, using defaults", "category", "content", "error", err)
		highlights = nil
	}
	if len(highlights) == 0 {
		highlights = model.DefaultCareerHighlights()
	}

	about.Highlights = make([]HighlightItem, 0, len(highlights))
	for _, h := range highlights {
		about.Highlights = append(about.Highlights, HighlightItem{
			ID:          h.ID,
			Icon:        model.NormalizeIcon(h.Icon),
			Title:       h.Title(lang),
			Description: h.Description(lang),
		})
	}

	return about, nil
}

func (s *ContentService) buildContact(ctx context.Context, lang string) (any, error) {
	info := s.contactInfo(ctx)
	return ContactSection{
		WhatsappNumber:  info.WhatsappNumber,
		WhatsappMessage: i18n.T(lang, "contact.whatsapp_message"),
		USDTWallet:      info.USDTWallet,
		USDTNetwork:     info.USDTNetwork,
		SellsUSDT:       info.SellsUSDT,
		HeroImageURL:    info.HeroImageURL,
	}, nil
}

// teamDemoImages fills the carousel until the admin uploads real photos.
var teamDemoImages = []string{
	"/demo/team-1.jpg",
	"/demo/team-2.jpg",
	"/demo/team-3.jpg",
	"/demo/team-4.jpg",
	"/demo/team-5.jpg",
	"/demo/team-6.jpg",
}

func (s *ContentService) buildTeam(ctx context.Context, lang string) (any, error) {
	section := TeamSection{
		WhatsappNumber:  s.contactInfo(ctx).WhatsappNumber,
		WhatsappMessage: i18n.T(lang, "team.whatsapp_message"),
	}

	images, err := s.queries.ListActiveTeamImages(ctx)
	if err != nil {
		s.logger.Warn("loading team images failed, using demo images", "category", "content", "error", err)
		images = nil
	}

	if len(images) == 0 {
		for _, url := range teamDemoImages {
			section.Images = append(section.Images, TeamImageItem{ImageURL: url})
		}
		return section, nil
	}

	section.Images = make([]TeamImageItem, 0, len(images))
	for _, img := range images {
		section.Images = append(section.Images, TeamImageItem{
			ID:       img.ID,
			ImageURL: img.ImageURL,
			AltText:  img.AltText(lang),
		})
	}
	return section, nil
}

func (s *ContentService) buildTestimonials(ctx context.Context, lang string) (any, error) {
	items, err := s.queries.ListActiveTestimonials(ctx)
	if err != nil {
		// The testimonials table may not exist yet mid-rollout; the
		// public section degrades to defaults either way.
		if !store.IsMissingTable(err) {
			s.logger.Warn("loading testimonials failed, using defaults", "category", "content", "error", err)
		}
		items = nil
	}
	if len(items) == 0 {
		items = model.DefaultTestimonials()
	}

	section := TestimonialsSection{
		Items: make([]TestimonialItem, 0, len(items)),
		Stats: []StatItem{
			{Value: "20+", Label: i18n.T(lang, "testimonials.stats.years")},
			{Value: "9,000+", Label: i18n.T(lang, "testimonials.stats.team")},
			{Value: "$150K+", Label: i18n.T(lang, "testimonials.stats.earnings")},
		},
	}
	for _, t := range items {
		section.Items = append(section.Items, TestimonialItem{
			ID:     t.ID,
			Name:   t.Name,
			Role:   t.Role(lang),
			Text:   t.Text(lang),
			Rating: model.ClampRating(t.Rating),
		})
	}
	return section, nil
}

// Static gallery content for the events section.
var (
	eventSliderImages = []string{
		"/images2/lorenzapy-evento-solar-group-2024-1.jpg",
		"/images2/lorenzapy-evento-solar-group-2024-2.jpg",
		"/images2/lorenzapy-evento-solar-group-2024-3.jpg",
		"/images2/lorenzapy-evento-solar-group-2025-1.jpg",
		"/images2/lorenzapy-evento-solar-group-2025-2.jpg",
	}

	eventCards = []struct {
		image, titleES, titlePT, location, year string
	}{
		{"/images2/lorenzapy-evento-solar-group-2024-1.jpg", "Eventos Solar Group", "Eventos Solar Group", "Internacional", "2024-2025"},
		{"/images2/lorenzapy-evento-solar-group-2024-2.jpg", "Reconocimiento Líderes", "Reconhecimento Líderes", "Solar Group", "2024"},
		{"/images2/lorenzapy-evento-solar-group-2024-3.jpg", "Evento de Networking", "Evento de Networking", "Internacional", "2024"},
		{"/images2/lorenzapy-evento-solar-group-2025-1.jpg", "Cumbre de Líderes 2025", "Cúpula de Líderes 2025", "Internacional", "2025"},
		{"/images2/lorenzapy-evento-solar-group-2025-2.jpg", "Expansión Global 2025", "Expansão Global 2025", "Internacional", "2025"},
	}
)

func (s *ContentService) buildEvents(_ context.Context, lang string) (any, error) {
	section := EventsSection{
		SliderImages: eventSliderImages,
		Stats: []StatItem{
			{Value: "50+", Label: i18n.T(lang, "events.stats.events")},
			{Value: "15+", Label: i18n.T(lang, "events.stats.countries")},
			{Value: "9,000+", Label: i18n.T(lang, "events.stats.trained")},
			{Value: "20+", Label: i18n.T(lang, "events.stats.awards")},
		},
	}
	for _, e := range eventCards {
		title := e.titleES
		if lang == model.LangPT {
			title = e.titlePT
		}
		section.Events = append(section.Events, EventItem{
			Image:    e.image,
			Title:    title,
			Location: e.location,
			Year:     e.year,
		})
	}
	return section, nil
}

func (s *ContentService) buildProjects(_ context.Context, lang string) (any, error) {
	mainDescription := "Mi proyecto principal. Reuní un equipo de 9,000 personas en solo 1 año."
	digitalResult := "Experiencia exitosa"
	mainTime := "1 año"
	if lang == model.LangPT {
		mainDescription = "Meu projeto principal. Reuni uma equipe de 9.000 pessoas em apenas 1 ano."
		digitalResult = "Experiência de sucesso"
		mainTime = "1 ano"
	}

	iperverseResult := "+$150,000 USD"
	if lang == model.LangPT {
		iperverseResult = "+$150.000 USD"
	}

	return ProjectsSection{
		Main: MainProject{
			Name:        "Solar Group",
			Description: mainDescription,
			Link:        "https://reg.solargroup.pro/en/eqn431",
			Stats:       ProjectStat{Team: "9,000+", Time: mainTime},
		},
		Others: []SimpleProject{
			{Name: "Herbalife", Logo: "🌿"},
			{Name: "Newlife", Logo: "✨"},
			{Name: "Forlife", Logo: "💪"},
			{Name: "Forever", Logo: "♾️"},
			{Name: "Apaysami", Logo: "🌟"},
			{Name: "TLC", Logo: "❤️"},
		},
		Digital: []DigitalProject{
			{Name: "Winandway", Result: digitalResult},
			{Name: "Crowone", Result: digitalResult},
			{Name: "Iperverse", Result: iperverseResult, Highlight: true},
		},
	}, nil
}
