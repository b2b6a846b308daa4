package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/menu-control/internal/demo"
	"github.com/atomicstack/menu-control/internal/menu"
	"github.com/atomicstack/menu-control/internal/render"
	"github.com/atomicstack/menu-control/internal/theme"
	"github.com/atomicstack/menu-control/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	Loop         bool
	ResetOnEnter bool
	ShowFooter   bool
	Verbose      bool
	Title        string
}

// Run bootstraps the session, the demo menu tree, and the Bubble Tea program.
func Run(cfg Config) error {
	renderer := render.NewText(theme.Default(), cfg.Width, cfg.Title)
	session := menu.NewSession(renderer)
	model := ui.NewModel(ui.Config{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Loop:         cfg.Loop,
		ResetOnEnter: cfg.ResetOnEnter,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
	}, session, renderer)
	if err := demo.Build(session, model.Notify); err != nil {
		return fmt.Errorf("build demo menu: %w", err)
	}
	session.Reset()

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
