// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/tabgrouper/internal/application/port"
	"github.com/bnema/tabgrouper/internal/domain/entity"
	domainurl "github.com/bnema/tabgrouper/internal/domain/url"
	"github.com/bnema/tabgrouper/internal/logging"
)

// BuildSnapshotUseCase produces read-only views of the current window.
type BuildSnapshotUseCase struct {
	provider port.TabProvider
}

// NewBuildSnapshotUseCase creates a new snapshot use case.
func NewBuildSnapshotUseCase(provider port.TabProvider) *BuildSnapshotUseCase {
	return &BuildSnapshotUseCase{provider: provider}
}

// BuildDomainSnapshot partitions the current window's tabs by domain.
// Tabs without a URL are skipped. Groups come back in first-seen order and
// keep the provider's tab order.
func (uc *BuildSnapshotUseCase) BuildDomainSnapshot(ctx context.Context) ([]*entity.DomainGroup, error) {
	log := logging.FromContext(ctx)

	tabs, err := uc.provider.QueryTabs(ctx, port.TabQuery{CurrentWindow: true})
	if err != nil {
		return nil, entity.NewProviderCallFailure("query_tabs", err)
	}

	groups := make([]*entity.DomainGroup, 0)
	byDomain := make(map[string]*entity.DomainGroup)
	for _, tab := range tabs {
		if tab.URL == "" {
			continue
		}
		domain := domainurl.DomainOf(tab.URL)
		group, ok := byDomain[domain]
		if !ok {
			group = &entity.DomainGroup{Domain: domain}
			byDomain[domain] = group
			groups = append(groups, group)
		}
		group.Tabs = append(group.Tabs, tab)
	}

	log.Debug().Int("tabs", len(tabs)).Int("domains", len(groups)).Msg("built domain snapshot")
	return groups, nil
}

// BuildCustomSnapshot assembles native groups with their member tabs.
//
// Groups and tabs are read with two independent queries. A tab created,
// closed or regrouped between them is reflected by one query only; callers
// that see an inconsistency re-query.
func (uc *BuildSnapshotUseCase) BuildCustomSnapshot(ctx context.Context) (*entity.CustomSnapshot, error) {
	log := logging.FromContext(ctx)

	var (
		infos []*entity.NativeGroupInfo
		tabs  []*entity.Tab
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		infos, err = uc.provider.QueryGroups(gctx, port.GroupQuery{CurrentWindow: true})
		if err != nil {
			return entity.NewProviderCallFailure("query_groups", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		tabs, err = uc.provider.QueryTabs(gctx, port.TabQuery{CurrentWindow: true})
		if err != nil {
			return entity.NewProviderCallFailure("query_tabs", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build group snapshot: %w", err)
	}

	snapshot := &entity.CustomSnapshot{
		Groups:        make([]*entity.NativeGroup, 0, len(infos)),
		UngroupedTabs: make([]*entity.Tab, 0),
	}
	byID := make(map[entity.GroupID]*entity.NativeGroup, len(infos))
	for _, info := range infos {
		if info == nil {
			continue
		}
		if _, dup := byID[info.ID]; dup {
			continue
		}
		group := nativeGroupFromInfo(info)
		byID[info.ID] = group
		snapshot.Groups = append(snapshot.Groups, group)
	}

	for _, tab := range tabs {
		if tab == nil {
			continue
		}
		group, ok := byID[tab.GroupID]
		if tab.GroupID == entity.NoGroup || !ok {
			snapshot.UngroupedTabs = append(snapshot.UngroupedTabs, tab)
		} else {
			group.Tabs = append(group.Tabs, tab)
		}
		if tab.Active && snapshot.ActiveGroupID == nil && ok {
			id := tab.GroupID
			snapshot.ActiveGroupID = &id
		}
	}

	log.Debug().
		Int("groups", len(snapshot.Groups)).
		Int("ungrouped", len(snapshot.UngroupedTabs)).
		Int("tabs", len(tabs)).
		Msg("built group snapshot")
	return snapshot, nil
}

// FindGroup returns the group with the given id from a fresh snapshot.
// The error wraps entity.ErrGroupNotFound when no such group exists.
func (uc *BuildSnapshotUseCase) FindGroup(ctx context.Context, id entity.GroupID) (*entity.NativeGroup, error) {
	snapshot, err := uc.BuildCustomSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	group := snapshot.Group(id)
	if group == nil {
		return nil, fmt.Errorf("%w: %d", entity.ErrGroupNotFound, id)
	}
	return group, nil
}

func nativeGroupFromInfo(info *entity.NativeGroupInfo) *entity.NativeGroup {
	title := info.Title
	if title == "" {
		title = entity.DefaultGroupTitle(info.ID)
	}
	return &entity.NativeGroup{
		ID:        info.ID,
		Title:     title,
		Color:     info.Color.OrDefault(),
		Collapsed: info.Collapsed,
		Tabs:      make([]*entity.Tab, 0),
	}
}
