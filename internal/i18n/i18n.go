// Package i18n provides the bilingual translation catalog for the site.
// Bundles are nested JSON trees keyed by dotted paths, one per language.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed locales
var localesFS embed.FS

// Catalog holds all translations for all supported languages.
type Catalog struct {
	mu          sync.RWMutex
	trees       map[string]map[string]any // lang -> nested translation tree
	matcher     language.Matcher
	supported   []language.Tag
	defaultLang string
	logger      *slog.Logger
}

// catalog is the global catalog instance.
var catalog *Catalog

// SupportedLanguages lists the site languages we support.
var SupportedLanguages = []string{"es", "pt"}

// DefaultLanguage is the language used when no preference is known.
const DefaultLanguage = "es"

// Init initializes the i18n system with the given logger.
func Init(logger *slog.Logger) error {
	catalog = &Catalog{
		trees:       make(map[string]map[string]any),
		defaultLang: DefaultLanguage,
		logger:      logger,
	}

	tags := make([]language.Tag, 0, len(SupportedLanguages))
	for _, lang := range SupportedLanguages {
		tags = append(tags, language.MustParse(lang))
	}
	catalog.supported = tags
	catalog.matcher = language.NewMatcher(tags)

	for _, lang := range SupportedLanguages {
		if err := catalog.loadLanguage(lang); err != nil {
			return fmt.Errorf("failed to load language %s: %w", lang, err)
		}
	}

	if logger != nil {
		logger.Info("i18n initialized", "languages", SupportedLanguages)
	}

	return nil
}

// loadLanguage loads the translation tree for a specific language.
func (c *Catalog) loadLanguage(lang string) error {
	path := fmt.Sprintf("locales/%s.json", lang)
	data, err := localesFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.trees[lang] = tree

	if c.logger != nil {
		c.logger.Debug("loaded translations", "language", lang, "sections", len(tree))
	}

	return nil
}

// T translates a dotted key (e.g. "hero.subtitle") to the specified language.
// If any path segment is missing, or the resolved value is not a string, the
// key itself is returned unchanged so a missing translation is visible in the
// UI instead of raising an error.
func T(lang, key string) string {
	if catalog == nil {
		return key
	}

	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	tree, ok := catalog.trees[lang]
	if !ok {
		tree, ok = catalog.trees[catalog.defaultLang]
		if !ok {
			return key
		}
	}

	var current any = tree
	for _, segment := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return key
		}
		current, ok = node[segment]
		if !ok {
			if catalog.logger != nil {
				catalog.logger.Debug("missing translation", "key", key, "lang", lang)
			}
			return key
		}
	}

	if s, ok := current.(string); ok {
		return s
	}
	return key
}

// MatchLanguage finds the best matching supported language for the given
// Accept-Language header or bare language code. Returns the language code.
func MatchLanguage(acceptLang string) string {
	if catalog == nil {
		return DefaultLanguage
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		tag, err := language.Parse(acceptLang)
		if err != nil {
			return catalog.defaultLang
		}
		tags = []language.Tag{tag}
	}

	_, idx, _ := catalog.matcher.Match(tags...)
	if idx >= 0 && idx < len(catalog.supported) {
		return catalog.supported[idx].String()
	}

	return catalog.defaultLang
}

// IsSupported checks if a language code is one of the site languages.
func IsSupported(lang string) bool {
	lang = strings.ToLower(lang)
	for _, supported := range SupportedLanguages {
		if supported == lang {
			return true
		}
	}
	return false
}

// Normalize returns lang lowered if supported, the default language otherwise.
func Normalize(lang string) string {
	lang = strings.ToLower(lang)
	if IsSupported(lang) {
		return lang
	}
	return DefaultLanguage
}
