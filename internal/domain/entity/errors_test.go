package entity_test

import (
	"errors"
	"testing"

	"github.com/bnema/tabgrouper/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartialApplyFailure_UnwrapsToProviderCallFailure(t *testing.T) {
	cause := errors.New("No tab with id: 9.")
	err := error(entity.NewPartialApplyFailure(1, 3, entity.MoveOp(9, 4), cause))

	var partial *entity.PartialApplyFailure
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 1, partial.Applied)
	assert.Equal(t, 3, partial.Total)

	var providerErr *entity.ProviderCallFailure
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "move", providerErr.Call)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "after 1 of 3")
}

func TestPartialApplyFailure_KeepsExistingProviderCallFailure(t *testing.T) {
	cause := entity.NewProviderCallFailure("moveTab", entity.ErrTabNotFound)
	err := entity.NewPartialApplyFailure(0, 1, entity.MoveOp(2, 0), cause)

	var providerErr *entity.ProviderCallFailure
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "moveTab", providerErr.Call)
	assert.ErrorIs(t, err, entity.ErrTabNotFound)
}

func TestGroupPreset_Validate(t *testing.T) {
	p := &entity.GroupPreset{Name: "  work ", Title: "Work", Color: entity.ColorBlue}
	require.NoError(t, p.Validate())
	assert.Equal(t, "work", p.Name)

	err := (&entity.GroupPreset{Name: " ", Color: entity.ColorBlue}).Validate()
	assert.ErrorIs(t, err, entity.ErrInvalidPreset)

	err = (&entity.GroupPreset{Name: "x", Color: "teal"}).Validate()
	assert.ErrorIs(t, err, entity.ErrInvalidPreset)
	assert.ErrorIs(t, err, entity.ErrInvalidColor)
}
