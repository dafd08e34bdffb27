package i18n

import (
	"testing"
)

func TestInit(t *testing.T) {
	// Initialize without logger
	if err := Init(nil); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if T("es", "admin.save") == "admin.save" {
		t.Error("Expected Spanish translations to be loaded")
	}
	if T("pt", "admin.save") == "admin.save" {
		t.Error("Expected Portuguese translations to be loaded")
	}
}

func TestT(t *testing.T) {
	if err := Init(nil); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	tests := []struct {
		lang     string
		key      string
		expected string
	}{
		{"es", "admin.save", "Guardar"},
		{"pt", "admin.save", "Salvar"},
		{"es", "nav.home", "Inicio"},
		{"pt", "nav.home", "Início"},
		{"es", "contact.whatsapp", "Escríbeme por WhatsApp"},
		{"pt", "contact.whatsapp", "Fale comigo no WhatsApp"},
		{"es", "testimonials.stats.years", "Años de experiencia"},
		{"pt", "testimonials.stats.years", "Anos de experiência"},
		// Fallback to Spanish for unknown language
		{"de", "admin.save", "Guardar"},
		// Return key if not found
		{"es", "nonexistent.key", "nonexistent.key"},
		// Return key if the path resolves to a subtree, not a string
		{"es", "admin", "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"_"+tt.key, func(t *testing.T) {
			result := T(tt.lang, tt.key)
			if result != tt.expected {
				t.Errorf("T(%q, %q) = %q, want %q", tt.lang, tt.key, result, tt.expected)
			}
		})
	}
}

func TestMatchLanguage(t *testing.T) {
	if err := Init(nil); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"es", "es"},
		{"pt", "pt"},
		{"es-PY", "es"},
		{"pt-BR", "pt"},
		{"de", "es"},      // Falls back to default
		{"invalid", "es"}, // Falls back to default
		{"pt-BR, es;q=0.9, en;q=0.8", "pt"},
		{"es-ES, pt;q=0.9", "es"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := MatchLanguage(tt.input)
			if result != tt.expected {
				t.Errorf("MatchLanguage(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		lang     string
		expected bool
	}{
		{"es", true},
		{"pt", true},
		{"ES", true},
		{"PT", true},
		{"en", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsSupported(tt.lang); got != tt.expected {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.lang, got, tt.expected)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
	}{
		{"es", "es"},
		{"pt", "pt"},
		{"PT", "pt"},
		{"en", "es"},
		{"", "es"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.lang); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.lang, got, tt.expected)
		}
	}
}
