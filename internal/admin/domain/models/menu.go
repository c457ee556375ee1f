package models

import "time"

// Translation holds the per-language copy of a menu item or promotion.
// The storefront serves Indonesian and English.
type Translation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type MenuItem struct {
	ID           string                 `json:"id"`
	Category     string                 `json:"category"`
	Image        string                 `json:"image"`
	Price        float64                `json:"price"`
	Rating       float64                `json:"rating,omitempty"`
	Reviews      int                    `json:"reviews,omitempty"`
	Translations map[string]Translation `json:"translations"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// DisplayName prefers the Indonesian name, falling back to English.
func (m MenuItem) DisplayName() string {
	if t, ok := m.Translations["id"]; ok && t.Name != "" {
		return t.Name
	}
	if t, ok := m.Translations["en"]; ok && t.Name != "" {
		return t.Name
	}
	return ""
}
