// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/tabgrouper/internal/application/usecase"
	"github.com/bnema/tabgrouper/internal/cli/styles"
	"github.com/bnema/tabgrouper/internal/domain/entity"
	"github.com/bnema/tabgrouper/internal/logging"
)

// PanelModel is the Bubble Tea model for the interactive group panel.
type PanelModel struct {
	help help.Model
	keys styles.PanelKeyMap

	snapshot *entity.CustomSnapshot
	rows     []panelRow
	selected int
	follow   entity.TabID // tab to keep selected across reloads
	applying bool
	status   string
	err      error
	width    int

	ctx       context.Context
	snapshots *usecase.BuildSnapshotUseCase
	drops     *usecase.DropQueue
	groups    *usecase.SyncGroupMetadataUseCase
	theme     *styles.Theme
	interval  time.Duration
}

// panelRow is either a bucket header (tab == nil) or a tab inside a bucket.
type panelRow struct {
	groupID entity.GroupID
	group   *entity.NativeGroup // nil for the ungrouped bucket
	tab     *entity.Tab
	pos     int // position of tab in its bucket
	size    int // bucket length
}

// PanelModelConfig holds the use cases the panel drives.
type PanelModelConfig struct {
	Snapshots *usecase.BuildSnapshotUseCase
	Drops     *usecase.DropQueue
	Groups    *usecase.SyncGroupMetadataUseCase

	// SyncInterval is how often group metadata changed in the browser is
	// pulled in. Zero disables it.
	SyncInterval time.Duration
}

// NewPanelModel creates a new group panel model.
func NewPanelModel(ctx context.Context, theme *styles.Theme, cfg PanelModelConfig) PanelModel {
	return PanelModel{
		help:      styles.NewStyledHelp(theme),
		keys:      styles.DefaultPanelKeyMap(),
		width:     80,
		ctx:       ctx,
		snapshots: cfg.Snapshots,
		drops:     cfg.Drops,
		groups:    cfg.Groups,
		theme:     theme,
		interval:  cfg.SyncInterval,
	}
}

// Init implements tea.Model.
func (m PanelModel) Init() tea.Cmd {
	if m.interval > 0 {
		return tea.Batch(m.loadSnapshot, m.scheduleSync())
	}
	return m.loadSnapshot
}

type snapshotLoadedMsg struct {
	snapshot *entity.CustomSnapshot
	err      error
}

type actionDoneMsg struct {
	status string
	err    error
}

type syncTickMsg struct{}

type metadataSyncedMsg struct {
	snapshot *entity.CustomSnapshot
	changed  []entity.GroupID
}

func (m PanelModel) loadSnapshot() tea.Msg {
	snapshot, err := m.snapshots.BuildCustomSnapshot(m.ctx)
	if err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Msg("failed to load snapshot")
	}
	return snapshotLoadedMsg{snapshot: snapshot, err: err}
}

// Update implements tea.Model.
func (m PanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case snapshotLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.setSnapshot(msg.snapshot)
		return m, nil

	case actionDoneMsg:
		m.applying = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}
		return m, m.loadSnapshot

	case syncTickMsg:
		if m.applying || m.snapshot == nil {
			return m, m.scheduleSync()
		}
		return m, m.syncMetadata(cloneGroups(m.snapshot))

	case metadataSyncedMsg:
		// A drop or toggle that started meanwhile reloads on its own.
		if len(msg.changed) > 0 && !m.applying {
			m.setSnapshot(msg.snapshot)
		}
		return m, m.scheduleSync()
	}
	return m, nil
}

func (m PanelModel) scheduleSync() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return syncTickMsg{} })
}

// syncMetadata pulls native title, color and collapsed changes into snapshot.
func (m PanelModel) syncMetadata(snapshot *entity.CustomSnapshot) tea.Cmd {
	return func() tea.Msg {
		changed, err := m.groups.Reconcile(m.ctx, snapshot)
		if err != nil {
			logging.FromContext(m.ctx).Debug().Err(err).Msg("metadata sync failed")
		}
		return metadataSyncedMsg{snapshot: snapshot, changed: changed}
	}
}

// cloneGroups copies the group records so Reconcile can update them off the
// update loop. Tabs are shared; they are never modified.
func cloneGroups(snapshot *entity.CustomSnapshot) *entity.CustomSnapshot {
	clone := *snapshot
	clone.Groups = make([]*entity.NativeGroup, len(snapshot.Groups))
	for i, g := range snapshot.Groups {
		group := *g
		clone.Groups[i] = &group
	}
	return &clone
}

func (m PanelModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	// One action at a time; the browser state is in flux until it lands.
	if m.applying {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		m.follow = m.selectedTabID()
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.rows)-1 {
			m.selected++
		}
		m.follow = m.selectedTabID()
	case key.Matches(msg, m.keys.MoveDown):
		return m.startMove(1)
	case key.Matches(msg, m.keys.MoveUp):
		return m.startMove(-1)
	case key.Matches(msg, m.keys.Collapse):
		return m.startToggleCollapse()
	case key.Matches(msg, m.keys.Ungroup):
		return m.startUngroup()
	case key.Matches(msg, m.keys.Refresh):
		m.status = ""
		return m, m.loadSnapshot
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m PanelModel) startMove(delta int) (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()
	if !ok || row.tab == nil {
		return m, nil
	}
	target := row.pos + delta
	if target < 0 || target >= row.size {
		return m, nil
	}
	side := entity.SideBefore
	if delta > 0 {
		side = entity.SideAfter
	}
	drag := entity.DragContext{
		Tab:           row.tab,
		SourceGroupID: row.groupID,
		TargetGroupID: row.groupID,
		TargetIndex:   target,
		Side:          side,
	}
	m.applying = true
	m.follow = row.tab.ID
	return m, m.drop(drag, fmt.Sprintf("Moved tab %d", row.tab.ID))
}

func (m PanelModel) startUngroup() (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()
	if !ok || row.tab == nil || row.group == nil {
		return m, nil
	}
	drag := entity.DragContext{
		Tab:           row.tab,
		SourceGroupID: row.groupID,
		TargetGroupID: entity.NoGroup,
		TargetIndex:   entity.NoTargetIndex,
	}
	m.applying = true
	m.follow = row.tab.ID
	return m, m.drop(drag, fmt.Sprintf("Ungrouped tab %d", row.tab.ID))
}

func (m PanelModel) startToggleCollapse() (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()
	if !ok || row.group == nil {
		return m, nil
	}
	// The command runs off the update loop; give it its own copy.
	group := *row.group
	collapsed := !group.Collapsed

	// Show the new state right away. The reload after the call settles it.
	optimistic := cloneGroups(m.snapshot)
	if g := optimistic.Group(group.ID); g != nil {
		g.Collapsed = collapsed
	}
	m.setSnapshot(optimistic)
	m.applying = true
	m.follow = 0
	return m, func() tea.Msg {
		err := m.groups.SetCollapsed(m.ctx, &group, collapsed)
		verb := "Expanded"
		if collapsed {
			verb = "Collapsed"
		}
		return actionDoneMsg{status: fmt.Sprintf("%s %s", verb, group.Title), err: err}
	}
}

func (m PanelModel) drop(drag entity.DragContext, status string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.drops.TryDrop(m.ctx, drag)
		if errors.Is(err, usecase.ErrDropInProgress) {
			return actionDoneMsg{status: "Another drop is in progress"}
		}
		return actionDoneMsg{status: status, err: err}
	}
}

func (m *PanelModel) setSnapshot(snapshot *entity.CustomSnapshot) {
	prevGroup := entity.NoGroup
	if row, ok := m.selectedRow(); ok && row.group != nil {
		prevGroup = row.groupID
	}

	m.snapshot = snapshot
	m.rows = make([]panelRow, 0, snapshot.TabCount()+len(snapshot.Groups)+1)
	for _, g := range snapshot.Groups {
		m.appendBucket(g.ID, g, g.Tabs)
	}
	if len(snapshot.UngroupedTabs) > 0 {
		m.appendBucket(entity.NoGroup, nil, snapshot.UngroupedTabs)
	}

	// Keep the selection on the same tab, or on the same group header.
	for i, row := range m.rows {
		if m.follow != 0 && row.tab != nil && row.tab.ID == m.follow {
			m.selected = i
			return
		}
		if m.follow == 0 && row.tab == nil && row.group != nil && row.groupID == prevGroup {
			m.selected = i
			return
		}
	}
	m.selected = max(0, min(m.selected, len(m.rows)-1))
}

func (m *PanelModel) appendBucket(id entity.GroupID, group *entity.NativeGroup, tabs []*entity.Tab) {
	m.rows = append(m.rows, panelRow{groupID: id, group: group, size: len(tabs)})
	if group != nil && group.Collapsed {
		return
	}
	for pos, tab := range tabs {
		m.rows = append(m.rows, panelRow{groupID: id, group: group, tab: tab, pos: pos, size: len(tabs)})
	}
}

func (m PanelModel) selectedRow() (panelRow, bool) {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return panelRow{}, false
	}
	return m.rows[m.selected], true
}

func (m PanelModel) selectedTabID() entity.TabID {
	if row, ok := m.selectedRow(); ok && row.tab != nil {
		return row.tab.ID
	}
	return 0
}

// View implements tea.Model.
func (m PanelModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Title.Render("Tab groups"))
	if m.applying {
		b.WriteString(t.Subtle.Render("  applying..."))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n\n")
	}
	if m.status != "" {
		b.WriteString(t.Subtle.Render(m.status))
		b.WriteString("\n\n")
	}

	if len(m.rows) == 0 && m.err == nil {
		b.WriteString(t.Subtle.Render("  No tabs in this window."))
		b.WriteString("\n")
	}
	for i, row := range m.rows {
		b.WriteString(m.renderRow(row, i == m.selected))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m PanelModel) renderRow(row panelRow, selected bool) string {
	t := m.theme
	var line string
	switch {
	case row.tab == nil && row.group != nil:
		icon := styles.IconFolder
		if row.group.Collapsed {
			icon = styles.IconFolderOff
		}
		line = icon + " " + t.GroupBadge(row.group.Title, row.group.Color) +
			t.Subtle.Render(fmt.Sprintf("  %d", row.size))
	case row.tab == nil:
		line = t.Subtitle.Render("Ungrouped")
	default:
		label := row.tab.Title
		if label == "" {
			label = row.tab.URL
		}
		line = "    " + label
	}
	if selected {
		return t.ListItemSelected.Render(styles.IconCursor + " " + line)
	}
	return t.ListItem.Render("  " + line)
}
