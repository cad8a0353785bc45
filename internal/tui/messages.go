package tui

import (
	"github.com/jask/guesstimate/internal/database/repository"
	"github.com/jask/guesstimate/internal/theme"
)

// ThemeMsg carries a new palette from the host preference watcher. It never
// touches game state.
type ThemeMsg struct {
	Palette theme.Palette
}

type statusMsg string

type errMsg struct{ error }

type historyMsg struct {
	game   string
	rounds []repository.Round
	counts map[string]int
}
