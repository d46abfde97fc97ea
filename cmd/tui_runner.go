package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fchimpan/kusa-blocks/internal/config"
	"github.com/fchimpan/kusa-blocks/internal/tui"
)

func defaultRunTUI(ctx context.Context, cfg config.Config, seed uint64) (tui.Result, error) {
	if cfg.Debug {
		f, err := tea.LogToFile(cfg.LogFile, "kusa-blocks")
		if err != nil {
			return tui.Result{}, fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(
		tui.NewModel(tui.Options{Seed: seed, Speed: cfg.Speed}),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return tui.Result{}, err
	}

	// A cancelled context still hands back the last model when there is one.
	m, ok := final.(*tui.Model)
	if !ok {
		if err != nil {
			return tui.Result{}, err
		}
		return tui.Result{}, fmt.Errorf("unexpected model type %T", final)
	}
	if err := m.Err(); err != nil {
		return m.Result(), err
	}
	return m.Result(), nil
}
