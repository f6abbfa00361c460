// Package cdp implements port.TabProvider by evaluating chrome.tabs and
// chrome.tabGroups calls inside the companion extension's service worker
// over the Chrome DevTools Protocol.
package cdp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/tabgrouper/internal/application/port"
	"github.com/bnema/tabgrouper/internal/domain/entity"
	"github.com/bnema/tabgrouper/internal/logging"
)

// ErrExtensionNotFound means no service worker of the extension is running.
var ErrExtensionNotFound = errors.New("extension service worker not found")

const defaultEvalTimeout = 10 * time.Second

// Config configures the CDP provider.
type Config struct {
	// URL is the DevTools HTTP endpoint, e.g. http://127.0.0.1:9222.
	URL string
	// ExtensionID selects the service worker to evaluate in. Empty picks
	// the first extension service worker found.
	ExtensionID string
	EvalTimeout time.Duration
}

// Provider is a port.TabProvider backed by a running Chromium browser.
type Provider struct {
	cfg Config
	raw *rawCDP

	mu        sync.Mutex
	sessionID string
}

var _ port.TabProvider = (*Provider)(nil)

// New creates a provider. No connection is made until the first call.
func New(cfg Config, log zerolog.Logger) *Provider {
	if cfg.EvalTimeout <= 0 {
		cfg.EvalTimeout = defaultEvalTimeout
	}
	return &Provider{
		cfg: cfg,
		raw: newRawCDP(cfg.URL, log.With().Str("component", "cdp").Logger()),
	}
}

// Close drops the websocket connection.
func (p *Provider) Close() error {
	p.mu.Lock()
	p.sessionID = ""
	p.mu.Unlock()
	p.raw.close()
	return nil
}

// session connects and attaches to the extension worker on first use, and
// again after the connection dropped.
func (p *Provider) session(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sessionID != "" && p.raw.connected() {
		return p.sessionID, nil
	}
	p.sessionID = ""

	if err := p.raw.connect(ctx); err != nil {
		return "", err
	}
	targets, err := p.raw.listTargets(ctx)
	if err != nil {
		return "", fmt.Errorf("list targets: %w", err)
	}

	prefix := "chrome-extension://"
	if p.cfg.ExtensionID != "" {
		prefix += p.cfg.ExtensionID + "/"
	}
	for _, t := range targets {
		if t.Type != "service_worker" || !strings.HasPrefix(t.URL, prefix) {
			continue
		}
		sessionID, err := p.raw.attachToTarget(ctx, t.TargetID)
		if err != nil {
			return "", err
		}
		logging.FromContext(ctx).Debug().
			Str("target", string(t.TargetID)).
			Str("url", t.URL).
			Msg("attached to extension worker")
		p.sessionID = sessionID
		return sessionID, nil
	}
	return "", fmt.Errorf("%w: %s", ErrExtensionNotFound, prefix)
}

// call evaluates fn(args...) in the extension and decodes the JSON result
// into out, which may be nil.
func (p *Provider) call(ctx context.Context, out any, fn string, args ...any) error {
	js, err := extensionCall(fn, args...)
	if err != nil {
		return err
	}
	sessionID, err := p.session(ctx)
	if err != nil {
		return err
	}

	evalCtx, cancel := context.WithTimeout(ctx, p.cfg.EvalTimeout)
	defer cancel()

	result, err := p.raw.evaluate(evalCtx, sessionID, js)
	if err != nil {
		var sessErr *sessionError
		if errors.As(err, &sessErr) {
			// The worker was stopped; reattach on the next call.
			p.mu.Lock()
			p.sessionID = ""
			p.mu.Unlock()
		}
		return classify(err)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal([]byte(result), out); err != nil {
		return fmt.Errorf("decode %s result: %w", fn, err)
	}
	return nil
}

// classify maps extension API error messages onto domain errors.
func classify(err error) error {
	var exc *evalException
	if !errors.As(err, &exc) {
		return err
	}
	msg := exc.Error()
	switch {
	case strings.Contains(msg, "No tab with id"):
		return fmt.Errorf("%w: %s", entity.ErrTabNotFound, msg)
	case strings.Contains(msg, "No group with id"):
		return fmt.Errorf("%w: %s", entity.ErrGroupNotFound, msg)
	default:
		return err
	}
}

func (p *Provider) QueryTabs(ctx context.Context, query port.TabQuery) ([]*entity.Tab, error) {
	var tabs []*entity.Tab
	info := tabsQueryInfo{CurrentWindow: query.CurrentWindow, Active: query.ActiveOnly}
	if err := p.call(ctx, &tabs, "chrome.tabs.query", info); err != nil {
		return nil, err
	}
	return tabs, nil
}

func (p *Provider) QueryGroups(ctx context.Context, query port.GroupQuery) ([]*entity.NativeGroupInfo, error) {
	var groups []*entity.NativeGroupInfo
	info := groupsQueryInfo{}
	if query.CurrentWindow {
		info.WindowID = chromeWindowIDCurrent
	}
	if err := p.call(ctx, &groups, "chrome.tabGroups.query", info); err != nil {
		return nil, err
	}
	return groups, nil
}

func (p *Provider) MoveTab(ctx context.Context, id entity.TabID, index int) (*entity.Tab, error) {
	var tab entity.Tab
	if err := p.call(ctx, &tab, "chrome.tabs.move", int64(id), moveProperties{Index: index}); err != nil {
		return nil, err
	}
	return &tab, nil
}

func (p *Provider) GroupTabs(ctx context.Context, ids []entity.TabID, groupID entity.GroupID) (entity.GroupID, error) {
	opts := groupOptions{TabIDs: make([]int64, 0, len(ids))}
	for _, id := range ids {
		opts.TabIDs = append(opts.TabIDs, int64(id))
	}
	if groupID != entity.NoGroup {
		gid := int64(groupID)
		opts.GroupID = &gid
	}

	var result int64
	if err := p.call(ctx, &result, "chrome.tabs.group", opts); err != nil {
		return entity.NoGroup, err
	}
	return entity.GroupID(result), nil
}

func (p *Provider) UngroupTabs(ctx context.Context, ids []entity.TabID) error {
	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, int64(id))
	}
	return p.call(ctx, nil, "chrome.tabs.ungroup", raw)
}

func (p *Provider) UpdateGroup(ctx context.Context, id entity.GroupID, update port.GroupUpdate) (*entity.NativeGroupInfo, error) {
	props := groupUpdateProperties{Title: update.Title, Collapsed: update.Collapsed}
	if update.Color != nil {
		color := string(*update.Color)
		props.Color = &color
	}

	var info entity.NativeGroupInfo
	if err := p.call(ctx, &info, "chrome.tabGroups.update", int64(id), props); err != nil {
		return nil, err
	}
	return &info, nil
}
