package entity

import (
	"fmt"
	"strings"
	"time"
)

// GroupPreset is a saved custom group look the user can apply to any
// native group.
type GroupPreset struct {
	Name      string     `json:"name"`
	Title     string     `json:"title"`
	Color     GroupColor `json:"color"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Validate checks the preset fields and trims the name in place.
func (p *GroupPreset) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPreset)
	}
	if !p.Color.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidPreset, ErrInvalidColor, p.Color)
	}
	return nil
}
