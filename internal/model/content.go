package model

import "time"

// Supported site languages. Spanish is the default.
const (
	LangES = "es"
	LangPT = "pt"
)

// SiteContent is a keyed piece of bilingual site copy. Rows are upserted by
// key from the admin content tab and never hard-deleted in normal flow.
type SiteContent struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	ValueES   string    `json:"value_es"`
	ValuePT   string    `json:"value_pt"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Value returns the value for the given language, falling back to Spanish
// for unknown language codes.
func (c SiteContent) Value(lang string) string {
	if lang == LangPT {
		return c.ValuePT
	}
	return c.ValueES
}

// TeamImage is one photo in the public team carousel.
type TeamImage struct {
	ID         int64     `json:"id"`
	ImageURL   string    `json:"image_url"`
	AltTextES  string    `json:"alt_text_es"`
	AltTextPT  string    `json:"alt_text_pt"`
	OrderIndex int64     `json:"order_index"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// AltText returns the alt text for the given language.
func (t TeamImage) AltText(lang string) string {
	if lang == LangPT {
		return t.AltTextPT
	}
	return t.AltTextES
}

// USDT networks accepted in contact settings.
const (
	NetworkTRC20 = "TRC20"
	NetworkERC20 = "ERC20"
	NetworkBEP20 = "BEP20"
	NetworkSOL   = "SOL"
	NetworkMATIC = "MATIC"
)

// USDTNetworks lists the accepted usdt_network values in display order.
var USDTNetworks = []string{NetworkTRC20, NetworkERC20, NetworkBEP20, NetworkSOL, NetworkMATIC}

// IsValidUSDTNetwork reports whether network is one of the accepted values.
func IsValidUSDTNetwork(network string) bool {
	for _, n := range USDTNetworks {
		if n == network {
			return true
		}
	}
	return false
}

// ContactInfo holds the site-wide contact settings. The table is expected to
// contain exactly one row; the singleton column enforces that at the schema.
type ContactInfo struct {
	ID             int64     `json:"id"`
	WhatsappNumber string    `json:"whatsapp_number"`
	USDTWallet     string    `json:"usdt_wallet"`
	USDTNetwork    string    `json:"usdt_network"`
	SellsUSDT      bool      `json:"sells_usdt"`
	HeroImageURL   string    `json:"hero_image_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Known career highlight icon tags. Unknown tags fall back to IconDefault.
const (
	IconAward     = "award"
	IconBriefcase = "briefcase"
	IconUsers     = "users"
	IconTrending  = "trending"
	IconStar      = "star"
	IconTarget    = "target"

	IconDefault = IconStar
)

var highlightIcons = map[string]struct{}{
	IconAward:     {},
	IconBriefcase: {},
	IconUsers:     {},
	IconTrending:  {},
	IconStar:      {},
	IconTarget:    {},
}

// NormalizeIcon returns icon if it is a known tag, IconDefault otherwise.
func NormalizeIcon(icon string) string {
	if _, ok := highlightIcons[icon]; ok {
		return icon
	}
	return IconDefault
}

// CareerHighlight is one card in the public about section. Read-only from
// the admin surface.
type CareerHighlight struct {
	ID            int64     `json:"id"`
	TitleES       string    `json:"title_es"`
	TitlePT       string    `json:"title_pt"`
	DescriptionES string    `json:"description_es"`
	DescriptionPT string    `json:"description_pt"`
	Icon          string    `json:"icon"`
	OrderIndex    int64     `json:"order_index"`
	CreatedAt     time.Time `json:"created_at"`
}

// Title returns the title for the given language.
func (h CareerHighlight) Title(lang string) string {
	if lang == LangPT {
		return h.TitlePT
	}
	return h.TitleES
}

// Description returns the description for the given language.
func (h CareerHighlight) Description(lang string) string {
	if lang == LangPT {
		return h.DescriptionPT
	}
	return h.DescriptionES
}

// Testimonial rating bounds.
const (
	RatingMin = 1
	RatingMax = 5
)

// ClampRating forces a rating into the 1..5 range before persistence.
func ClampRating(rating int64) int64 {
	if rating < RatingMin {
		return RatingMin
	}
	if rating > RatingMax {
		return RatingMax
	}
	return rating
}

// Testimonial is one entry in the public testimonial list.
type Testimonial struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	RoleES     string    `json:"role_es"`
	RolePT     string    `json:"role_pt"`
	TextES     string    `json:"text_es"`
	TextPT     string    `json:"text_pt"`
	ImageURL   string    `json:"image_url,omitempty"`
	Rating     int64     `json:"rating"`
	OrderIndex int64     `json:"order_index"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Role returns the role label for the given language.
func (t Testimonial) Role(lang string) string {
	if lang == LangPT {
		return t.RolePT
	}
	return t.RoleES
}

// Text returns the testimonial body for the given language.
func (t Testimonial) Text(lang string) string {
	if lang == LangPT {
		return t.TextPT
	}
	return t.TextES
}
