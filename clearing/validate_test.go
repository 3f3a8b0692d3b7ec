package clearing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/marketclear/clearing"
	"github.com/katalvlaran/marketclear/valuation"
)

// fixedModel returns the 3×3 scenario market, converging to [2 1 0].
func fixedModel(t *testing.T) *valuation.Model {
	t.Helper()
	m, err := valuation.New([][]int{
		{6, 5, 2},
		{7, 6, 3},
		{6, 7, 6},
	})
	require.NoError(t, err)

	return m
}

// TestIsValidPriceVector_InstallsCandidate verifies the documented side
// effect: after the call, Prices() returns the candidate — whether the
// verdict was true or false.
func TestIsValidPriceVector_InstallsCandidate(t *testing.T) {
	m := fixedModel(t)
	opts := clearing.DefaultOptions()

	ok, err := clearing.IsValidPriceVector(m, []int{2, 1, 0}, opts)
	require.NoError(t, err)
	assert.True(t, ok, "[2 1 0] clears the 3×3 market")
	assert.Equal(t, []int{2, 1, 0}, m.Prices(), "candidate installed on true")

	ok, err = clearing.IsValidPriceVector(m, []int{0, 0, 0}, opts)
	require.NoError(t, err)
	assert.False(t, ok, "zero prices leave buyers 0 and 1 fighting over product 0")
	assert.Equal(t, []int{0, 0, 0}, m.Prices(), "candidate installed on false too")
}

// TestIsValidPriceVector_Idempotent verifies repeating the call returns
// the same verdict and leaves the installed vector unchanged in between.
func TestIsValidPriceVector_Idempotent(t *testing.T) {
	m := fixedModel(t)
	opts := clearing.DefaultOptions()

	first, err := clearing.IsValidPriceVector(m, []int{2, 1, 0}, opts)
	require.NoError(t, err)
	installed := m.Prices()

	second, err := clearing.IsValidPriceVector(m, []int{2, 1, 0}, opts)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same candidate, same verdict")
	assert.Equal(t, installed, m.Prices(), "installed vector unchanged")
}

// TestIsValidPriceVector_WrongLength verifies a wrong-length candidate
// is a recoverable (false, nil) and adopts nothing.
func TestIsValidPriceVector_WrongLength(t *testing.T) {
	m := fixedModel(t)
	opts := clearing.DefaultOptions()

	ok, err := clearing.IsValidPriceVector(m, []int{1, 2}, opts)
	require.NoError(t, err, "wrong length is a verdict, not an error")
	assert.False(t, ok)
	assert.Equal(t, []int{0, 0, 0}, m.Prices(), "nothing adopted")
}

// TestCheckClears_Pure verifies the pure query never touches the live
// prices or the adjusted cache.
func TestCheckClears_Pure(t *testing.T) {
	m := fixedModel(t)
	opts := clearing.DefaultOptions()

	before := m.Prices()
	adjustedBefore := m.Adjusted()

	ok, err := clearing.CheckClears(m, []int{2, 1, 0}, opts)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, before, m.Prices(), "CheckClears must not mutate prices")
	assert.Equal(t, adjustedBefore, m.Adjusted(), "nor the adjusted cache")

	ok, err = clearing.CheckClears(m, []int{9, 9}, opts)
	require.NoError(t, err)
	assert.False(t, ok, "wrong length is simply not clearing")
}

// TestCheckClears_AgreesWithIsValid verifies both validators give the
// same verdict over a spread of candidates.
func TestCheckClears_AgreesWithIsValid(t *testing.T) {
	opts := clearing.DefaultOptions()
	candidates := [][]int{
		{0, 0, 0},
		{2, 1, 0},
		{3, 2, 1},
		{1, 0, 0},
		{5, 0, 5},
	}
	for _, candidate := range candidates {
		pure, err := clearing.CheckClears(fixedModel(t), candidate, opts)
		require.NoError(t, err)
		mutating, err := clearing.IsValidPriceVector(fixedModel(t), candidate, opts)
		require.NoError(t, err)
		assert.Equal(t, pure, mutating, "verdicts must agree for %v", candidate)
	}
}

// TestAdoptPrices verifies the explicit mutator installs and refreshes.
func TestAdoptPrices(t *testing.T) {
	m := fixedModel(t)

	require.NoError(t, clearing.AdoptPrices(m, []int{2, 1, 0}))
	assert.Equal(t, []int{2, 1, 0}, m.Prices())

	// Adjusted cache refreshed: row 0 becomes [4 4 2].
	assert.Equal(t, []int{4, 4, 2}, m.Adjusted()[0])

	err := clearing.AdoptPrices(m, []int{1})
	assert.ErrorIs(t, err, valuation.ErrPriceLength)
	assert.ErrorIs(t, clearing.AdoptPrices(nil, []int{1}), clearing.ErrNilModel)
}

// TestValidate_NilModel verifies nil-model sentinels on both validators.
func TestValidate_NilModel(t *testing.T) {
	opts := clearing.DefaultOptions()

	_, err := clearing.CheckClears(nil, []int{0}, opts)
	assert.ErrorIs(t, err, clearing.ErrNilModel)
	_, err = clearing.IsValidPriceVector(nil, []int{0}, opts)
	assert.ErrorIs(t, err, clearing.ErrNilModel)
}
