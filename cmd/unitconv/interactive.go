package main

import (
	"fmt"

	"unitconv/cmd/unitconv/tui"
	"unitconv/internal/config"
	"unitconv/internal/history"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// runInteractive starts the conversion form. History and the config watcher
// are best-effort: the form runs without them rather than refusing to start.
func runInteractive() error {
	var store *history.Store
	if cfg.History.Enabled {
		s, err := history.Open(cfg.History.DatabasePath, logger)
		if err != nil {
			logger.Warn("history disabled for this session", zap.Error(err))
		} else {
			store = s
			defer store.Close()
		}
	}

	model := tui.New(cfg, logger, store)

	reloads := model.ConfigReloads()
	watcher, err := config.NewWatcher(configFilePath(), logger, func(c *config.Config) {
		select {
		case reloads <- c:
		default: // drop when the form is behind; the next save wins
		}
	})
	if err != nil {
		logger.Warn("config watcher unavailable", zap.Error(err))
	} else {
		if err := watcher.Start(); err != nil {
			logger.Warn("config watcher failed to start", zap.Error(err))
		} else {
			defer watcher.Stop()
		}
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive form failed: %w", err)
	}
	return nil
}
