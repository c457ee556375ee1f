package models

import "time"

type Promotion struct {
	ID           string                 `json:"id"`
	Active       bool                   `json:"active"`
	Image        string                 `json:"image,omitempty"`
	ActionLink   string                 `json:"action_link,omitempty"`
	DisplayOrder int                    `json:"display_order"`
	Translations map[string]Translation `json:"translations"`
	MenuItemIDs  []string               `json:"menu_item_ids,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}
