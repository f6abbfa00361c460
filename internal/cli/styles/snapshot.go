package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/tabgrouper/internal/domain/entity"
)

// SnapshotRenderer renders snapshots and plans for CLI output.
type SnapshotRenderer struct {
	theme *Theme
}

// NewSnapshotRenderer creates a renderer with the given theme.
func NewSnapshotRenderer(theme *Theme) *SnapshotRenderer {
	return &SnapshotRenderer{theme: theme}
}

// RenderDomains lists domain groups with their tabs.
func (r *SnapshotRenderer) RenderDomains(groups []*entity.DomainGroup) string {
	t := r.theme
	if len(groups) == 0 {
		return t.Subtle.Render("  No tabs with URLs in this window.")
	}
	var b strings.Builder
	for _, g := range groups {
		b.WriteString(t.Highlight.Render(IconGlobe + " " + g.Domain))
		b.WriteString(t.Subtle.Render(fmt.Sprintf("  %d", len(g.Tabs))))
		b.WriteString("\n")
		for _, tab := range g.Tabs {
			b.WriteString(r.tabLine(tab))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderGroups lists native groups, then the ungrouped tabs.
func (r *SnapshotRenderer) RenderGroups(snapshot *entity.CustomSnapshot) string {
	t := r.theme
	var b strings.Builder
	for _, g := range snapshot.Groups {
		icon := IconFolder
		if g.Collapsed {
			icon = IconFolderOff
		}
		b.WriteString(t.Subtle.Render(icon + " "))
		b.WriteString(t.GroupBadge(g.Title, g.Color))
		b.WriteString(t.Subtle.Render(fmt.Sprintf("  id=%d  %d tabs", g.ID, len(g.Tabs))))
		if snapshot.ActiveGroupID != nil && *snapshot.ActiveGroupID == g.ID {
			b.WriteString(" " + t.Badge.Render("active"))
		}
		b.WriteString("\n")
		if g.Collapsed {
			continue
		}
		for _, tab := range g.Tabs {
			b.WriteString(r.tabLine(tab))
		}
	}
	if len(snapshot.UngroupedTabs) > 0 {
		b.WriteString(t.Subtitle.Render("Ungrouped"))
		b.WriteString("\n")
		for _, tab := range snapshot.UngroupedTabs {
			b.WriteString(r.tabLine(tab))
		}
	}
	if b.Len() == 0 {
		return t.Subtle.Render("  No tabs in this window.")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *SnapshotRenderer) tabLine(tab *entity.Tab) string {
	t := r.theme
	label := tab.Title
	if label == "" {
		label = tab.URL
	}
	marker := "  "
	if tab.Active {
		marker = t.Highlight.Render(IconDot) + " "
	}
	return fmt.Sprintf("  %s%s %s\n", marker, t.Subtle.Render(fmt.Sprintf("%4d", tab.ID)), t.Normal.Render(label))
}

// RenderPlan lists the operations of a drop and how many were applied.
func (r *SnapshotRenderer) RenderPlan(plan *entity.OperationPlan, applied int) string {
	t := r.theme
	if plan == nil || plan.Empty() {
		return t.Subtle.Render("Nothing to do.")
	}
	var b strings.Builder
	for i, op := range plan.Operations {
		mark := t.SuccessStyle.Render(IconCheck)
		if i >= applied {
			mark = t.ErrorStyle.Render(IconX)
		}
		fmt.Fprintf(&b, "%s %s\n", mark, op.String())
	}
	b.WriteString(t.Subtle.Render(fmt.Sprintf("%d of %d operations applied", applied, plan.Len())))
	return b.String()
}

// RenderPresets lists saved group presets.
func (r *SnapshotRenderer) RenderPresets(presets []*entity.GroupPreset) string {
	t := r.theme
	if len(presets) == 0 {
		return t.Subtle.Render("  No presets saved.")
	}
	var b strings.Builder
	for _, p := range presets {
		title := p.Title
		if title == "" {
			title = "(keep title)"
		}
		fmt.Fprintf(&b, "%s  %s\n", t.Title.Render(p.Name), t.GroupBadge(title, p.Color))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderError formats an error line.
func (r *SnapshotRenderer) RenderError(err error) string {
	return r.theme.ErrorStyle.Render(fmt.Sprintf("%s %v", IconX, err))
}

// RenderSuccess formats a success line.
func (r *SnapshotRenderer) RenderSuccess(msg string) string {
	return r.theme.SuccessStyle.Render(IconCheck + " " + msg)
}
