// Package ui runs the interactive catalog browser.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"tableflip.dev/bookshelf/pkg/catalog"
	"tableflip.dev/bookshelf/pkg/config"
	"tableflip.dev/bookshelf/pkg/theme"
	teaui "tableflip.dev/bookshelf/pkg/tui/app"
)

// UI launches the Bubble Tea browser over the catalog.
type UI struct {
	Store  *catalog.Store
	Config config.Config
	Dark   theme.Detector
}

// Do runs the program until the user quits. The terminal belongs to the
// program, so logs go to the configured log file or nowhere.
func (u *UI) Do(ctx context.Context) error {
	if u.Store == nil {
		return errors.New("can not browse, no catalog")
	}
	logger, closeLog, err := u.logger()
	if err != nil {
		return err
	}
	defer closeLog()

	name := theme.Resolve(u.Config.Theme, u.Dark)
	logger.Info("starting browser", "books", u.Store.Len(), "page_size", u.Config.PageSize, "theme", name)
	return teaui.Run(ctx, u.Store, teaui.Options{
		PageSize: u.Config.PageSize,
		Theme:    name,
		Logger:   logger,
	})
}

func (u *UI) logger() (*slog.Logger, func(), error) {
	if u.Config.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(u.Config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}
