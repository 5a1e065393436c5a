package main

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unklstewy/airforcenone/pkg/classify"
)

func testWatchModel(calls *int) watchModel {
	poll := func(context.Context) classify.Report {
		*calls++
		return testReport()
	}
	return newWatchModel(context.Background(), poll, classify.NewCountryPolicy(nil), time.Minute)
}

// TestWatchInitPolls tests that the first poll starts immediately.
func TestWatchInitPolls(t *testing.T) {
	var calls int
	m := testWatchModel(&calls)

	cmd := m.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, 1, calls)
	_, ok := msg.(reportMsg)
	assert.True(t, ok)
	assert.Contains(t, m.View(), "Polling ADSB.One military feed")
}

// TestWatchReportSchedulesTick tests the poll/tick cycle.
func TestWatchReportSchedulesTick(t *testing.T) {
	var calls int
	m := testWatchModel(&calls)

	updated, cmd := m.Update(reportMsg(testReport()))
	m = updated.(watchModel)
	require.NotNil(t, cmd)
	assert.False(t, m.polling)
	assert.Equal(t, 1, m.seq)
	assert.Contains(t, m.View(), "Air Force One")
	assert.Contains(t, m.View(), "every 1m0s")

	// A tick from the current chain polls again.
	updated, cmd = m.Update(tickMsg{seq: 1})
	m = updated.(watchModel)
	require.NotNil(t, cmd)
	assert.True(t, m.polling)
	cmd()
	assert.Equal(t, 1, calls)
}

// TestWatchStaleTickIgnored tests that superseded ticks do not poll.
func TestWatchStaleTickIgnored(t *testing.T) {
	var calls int
	m := testWatchModel(&calls)

	updated, _ := m.Update(reportMsg(testReport()))
	updated, _ = updated.Update(reportMsg(testReport()))
	m = updated.(watchModel)
	require.Equal(t, 2, m.seq)

	updated, cmd := m.Update(tickMsg{seq: 1})
	assert.Nil(t, cmd)
	assert.False(t, updated.(watchModel).polling)
}

// TestWatchKeys tests refresh and quit.
func TestWatchKeys(t *testing.T) {
	var calls int
	m := testWatchModel(&calls)

	// Refresh is ignored while the first poll is in flight.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Nil(t, cmd)

	updated, _ := m.Update(reportMsg(testReport()))
	updated, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	assert.True(t, updated.(watchModel).polling)
	assert.Contains(t, updated.View(), "polling...")

	updated, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, updated.View())
}
