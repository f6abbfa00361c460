package entity_test

import (
	"testing"

	"github.com/bnema/tabgrouper/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroupColor(t *testing.T) {
	tests := []struct {
		input    string
		expected entity.GroupColor
		wantErr  bool
	}{
		{"blue", entity.ColorBlue, false},
		{"  Purple ", entity.ColorPurple, false},
		{"gray", entity.ColorGrey, false},
		{"GREY", entity.ColorGrey, false},
		{"magenta", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := entity.ParseGroupColor(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGroupColor_OrDefaultAndHex(t *testing.T) {
	assert.Equal(t, entity.ColorRed, entity.ColorRed.OrDefault())
	assert.Equal(t, entity.DefaultGroupColor, entity.GroupColor("").OrDefault())
	assert.Equal(t, entity.DefaultGroupColor, entity.GroupColor("teal").OrDefault())

	assert.Equal(t, "#1a73e8", entity.ColorBlue.Hex())
	assert.Equal(t, entity.DefaultGroupColor.Hex(), entity.GroupColor("teal").Hex())

	for _, c := range entity.GroupColors() {
		assert.True(t, c.Valid(), "color %s should be valid", c)
	}
}

func TestNativeGroup_HasDefaultMetadata(t *testing.T) {
	tests := []struct {
		name     string
		group    entity.NativeGroup
		expected bool
	}{
		{"empty title and color", entity.NativeGroup{ID: 4}, true},
		{"synthesized title", entity.NativeGroup{ID: 4, Title: "Group 4", Color: entity.ColorGrey}, true},
		{"synthesized title of another group", entity.NativeGroup{ID: 4, Title: "Group 5"}, false},
		{"custom title", entity.NativeGroup{ID: 4, Title: "Work"}, false},
		{"custom color", entity.NativeGroup{ID: 4, Color: entity.ColorGreen}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.group.HasDefaultMetadata())
		})
	}
}

func TestMinIndex(t *testing.T) {
	_, ok := entity.MinIndex(nil)
	assert.False(t, ok)

	lowest, ok := entity.MinIndex([]*entity.Tab{{Index: 7}, {Index: 3}, {Index: 5}})
	require.True(t, ok)
	assert.Equal(t, 3, lowest)
}

func TestCustomSnapshot_FindTabAndBucket(t *testing.T) {
	a := &entity.Tab{ID: 1, GroupID: 10}
	b := &entity.Tab{ID: 2, GroupID: entity.NoGroup}
	snap := &entity.CustomSnapshot{
		Groups:        []*entity.NativeGroup{{ID: 10, Tabs: []*entity.Tab{a}}},
		UngroupedTabs: []*entity.Tab{b},
	}

	tab, groupID, ok := snap.FindTab(1)
	require.True(t, ok)
	assert.Same(t, a, tab)
	assert.Equal(t, entity.GroupID(10), groupID)

	_, groupID, ok = snap.FindTab(2)
	require.True(t, ok)
	assert.Equal(t, entity.NoGroup, groupID)

	_, _, ok = snap.FindTab(3)
	assert.False(t, ok)

	bucket, ok := snap.Bucket(entity.NoGroup)
	require.True(t, ok)
	assert.Len(t, bucket, 1)

	_, ok = snap.Bucket(99)
	assert.False(t, ok)
	assert.Equal(t, 2, snap.TabCount())
}
