package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpinModel_InterruptWaitsForWork(t *testing.T) {
	var m tea.Model = spinModel{}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Nil(t, cmd, "no quit while the work is still running")
	assert.True(t, m.(spinModel).interrupted)

	m, cmd = m.Update(spinDoneMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, m.(spinModel).err, ErrCanceled)
}

func TestSpinModel_PropagatesWorkError(t *testing.T) {
	var m tea.Model = spinModel{}
	boom := errors.New("boom")

	m, cmd := m.Update(spinDoneMsg{err: boom})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, m.(spinModel).err, boom)
}

func TestSpinModel_CompletesWithoutError(t *testing.T) {
	var m tea.Model = spinModel{}

	m, cmd := m.Update(spinDoneMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.NoError(t, m.(spinModel).err)
}
