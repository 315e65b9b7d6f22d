package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestGamePauseControls(t *testing.T) {
	cases := []struct {
		name       string
		paused     bool
		action     func(g *Game)
		wantPaused bool
		wantQuit   bool
	}{
		{"toggle_pauses", false, (*Game).togglePause, true, false},
		{"toggle_unpauses", true, (*Game).togglePause, false, false},
		{"resume_clears_pause", true, (*Game).resume, false, false},
		{"resume_while_running", false, (*Game).resume, false, false},
		{"quit_from_menu", true, (*Game).requestQuit, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := &Game{paused: c.paused}
			c.action(g)
			assert.Equal(t, c.wantPaused, g.paused)
			assert.Equal(t, c.wantQuit, g.quit)
		})
	}
}

func TestGameUpdateTerminatesAfterQuit(t *testing.T) {
	g := &Game{paused: true}
	g.requestQuit()
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
}
