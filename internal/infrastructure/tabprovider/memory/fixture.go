package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bnema/tabgrouper/internal/domain/entity"
)

// Fixture is the JSON form of a provider's state.
type Fixture struct {
	CurrentWindowID int64                     `json:"currentWindowId"`
	Tabs            []*entity.Tab             `json:"tabs"`
	Groups          []*entity.NativeGroupInfo `json:"groups"`
}

// LoadFixture reads a fixture file.
func LoadFixture(path string) (Fixture, error) {
	var fixture Fixture
	data, err := os.ReadFile(path)
	if err != nil {
		return fixture, fmt.Errorf("failed to read fixture: %w", err)
	}
	if err := json.Unmarshal(data, &fixture); err != nil {
		return fixture, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return fixture, nil
}

// Fixture returns the provider's current state.
func (p *Provider) Fixture() Fixture {
	p.mu.Lock()
	defer p.mu.Unlock()

	fixture := Fixture{
		CurrentWindowID: p.currentWindow,
		Tabs:            make([]*entity.Tab, 0),
		Groups:          make([]*entity.NativeGroupInfo, 0, len(p.groupOrder)),
	}
	windowIDs := make([]int64, 0, len(p.windows))
	for id := range p.windows {
		windowIDs = append(windowIDs, id)
	}
	slices.Sort(windowIDs)
	for _, wid := range windowIDs {
		for _, t := range p.windows[wid] {
			fixture.Tabs = append(fixture.Tabs, t.Clone())
		}
	}
	for _, id := range p.groupOrder {
		fixture.Groups = append(fixture.Groups, p.groups[id].Clone())
	}
	return fixture
}

// SaveFixture writes the provider's current state to path.
func (p *Provider) SaveFixture(path string) error {
	data, err := json.MarshalIndent(p.Fixture(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode fixture: %w", err)
	}

	const fixtureDirPerm = 0o755
	if err := os.MkdirAll(filepath.Dir(path), fixtureDirPerm); err != nil {
		return fmt.Errorf("failed to create fixture directory: %w", err)
	}
	const fixtureFilePerm = 0o600
	if err := os.WriteFile(path, append(data, '\n'), fixtureFilePerm); err != nil {
		return fmt.Errorf("failed to write fixture: %w", err)
	}
	return nil
}
