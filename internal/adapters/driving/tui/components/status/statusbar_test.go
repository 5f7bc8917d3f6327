package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercopilot/ccimport/internal/adapters/driving/tui/keymap"
	"github.com/careercopilot/ccimport/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	bar := NewBar(s, km)

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, 0, bar.RunCount())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilParams(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestBar_Init(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())
}

func TestBar_SetState(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetState(StateLoading)

	assert.Equal(t, StateLoading, bar.State())
}

func TestBar_SetMessage(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetMessage("ledger unavailable")

	assert.Equal(t, "ledger unavailable", bar.Message())
}

func TestBar_SetRunCount(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetRunCount(7)

	assert.Equal(t, 7, bar.RunCount())
}

func TestBar_SetWidth(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetWidth(120)

	assert.Equal(t, 120, bar.Width())
}

func TestBar_View_Ready(t *testing.T) {
	bar := NewBar(nil, nil)

	output := bar.View()

	assert.Contains(t, output, "Ready")
	assert.Contains(t, output, "quit")
}

func TestBar_View_RunCount(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetRunCount(3)

	output := bar.View()

	assert.Contains(t, output, "3 runs")
	assert.Contains(t, output, "reload")
}

func TestBar_View_Loading(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateLoading)

	output := bar.View()

	assert.Contains(t, output, "Loading")
}

func TestBar_View_Error(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")

	output := bar.View()

	assert.Contains(t, output, "Error: boom")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetRunCount(5)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Equal(t, 0, bar.RunCount())
}

func TestBar_Update_Passive(t *testing.T) {
	bar := NewBar(nil, nil)

	updated, cmd := bar.Update(nil)

	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}
