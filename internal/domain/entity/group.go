package entity

import (
	"fmt"
	"strings"
)

// GroupColor is one of the named colors a native tab group can carry.
type GroupColor string

const (
	ColorGrey   GroupColor = "grey"
	ColorBlue   GroupColor = "blue"
	ColorRed    GroupColor = "red"
	ColorYellow GroupColor = "yellow"
	ColorGreen  GroupColor = "green"
	ColorPink   GroupColor = "pink"
	ColorPurple GroupColor = "purple"
	ColorCyan   GroupColor = "cyan"
	ColorOrange GroupColor = "orange"
)

// DefaultGroupColor is the neutral color used when a group has none.
const DefaultGroupColor = ColorGrey

var groupColorHex = map[GroupColor]string{
	ColorGrey:   "#5f6368",
	ColorBlue:   "#1a73e8",
	ColorRed:    "#d93025",
	ColorYellow: "#f9ab00",
	ColorGreen:  "#1e8e3e",
	ColorPink:   "#d01884",
	ColorPurple: "#a142f4",
	ColorCyan:   "#007b83",
	ColorOrange: "#fa903e",
}

// GroupColors returns every supported color in display order.
func GroupColors() []GroupColor {
	return []GroupColor{
		ColorGrey, ColorBlue, ColorRed, ColorYellow, ColorGreen,
		ColorPink, ColorPurple, ColorCyan, ColorOrange,
	}
}

// Valid reports whether c is a supported color name.
func (c GroupColor) Valid() bool {
	_, ok := groupColorHex[c]
	return ok
}

// Hex returns the display color for c, falling back to the default color.
func (c GroupColor) Hex() string {
	if hex, ok := groupColorHex[c]; ok {
		return hex
	}
	return groupColorHex[DefaultGroupColor]
}

// OrDefault returns c, or DefaultGroupColor when c is empty or unknown.
func (c GroupColor) OrDefault() GroupColor {
	if c.Valid() {
		return c
	}
	return DefaultGroupColor
}

// ParseGroupColor parses a color name case-insensitively.
// "gray" is accepted as an alias of grey.
func ParseGroupColor(name string) (GroupColor, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "gray" {
		normalized = string(ColorGrey)
	}
	c := GroupColor(normalized)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, name)
	}
	return c, nil
}

// NativeGroupInfo is the provider's record of a native tab group.
type NativeGroupInfo struct {
	ID        GroupID    `json:"id"`
	WindowID  int64      `json:"windowId"`
	Title     string     `json:"title"`
	Color     GroupColor `json:"color"`
	Collapsed bool       `json:"collapsed"`
}

// Clone returns a copy of the group record.
func (g *NativeGroupInfo) Clone() *NativeGroupInfo {
	if g == nil {
		return nil
	}
	c := *g
	return &c
}

// NativeGroup is a browser tab group together with its member tabs,
// in window order.
type NativeGroup struct {
	ID        GroupID    `json:"id"`
	Title     string     `json:"title"`
	Color     GroupColor `json:"color"`
	Collapsed bool       `json:"collapsed"`
	Tabs      []*Tab     `json:"tabs"`
}

// DefaultGroupTitle is the title synthesized for groups the user never named.
func DefaultGroupTitle(id GroupID) string {
	return fmt.Sprintf("Group %d", id)
}

// HasDefaultMetadata reports whether the group still carries the synthesized
// title and the neutral color.
func (g *NativeGroup) HasDefaultMetadata() bool {
	titleDefault := g.Title == "" || g.Title == DefaultGroupTitle(g.ID)
	return titleDefault && g.Color.OrDefault() == DefaultGroupColor
}

// TabIDs returns the member tab ids in window order.
func (g *NativeGroup) TabIDs() []TabID {
	return TabIDs(g.Tabs)
}

// DomainGroup is a derived grouping of tabs sharing a hostname.
// It is rebuilt on every snapshot and never persisted.
type DomainGroup struct {
	Domain string `json:"domain"`
	Tabs   []*Tab `json:"tabs"`
}
