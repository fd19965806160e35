// Package watcher re-runs a callback whenever a watched file changes. It
// backs the `delimit watch` command, which reprints the formatted output on
// every save.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

type Service struct {
	path     string
	logger   *slog.Logger
	onChange func(context.Context)
	watcher  *fsnotify.Watcher
}

func New(path string, logger *slog.Logger, onChange func(context.Context)) (*Service, error) {
	fileWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	return &Service{
		path:     filepath.Clean(path),
		logger:   logger,
		onChange: onChange,
		watcher:  fileWatcher,
	}, nil
}

// Start blocks until ctx is canceled, invoking the callback after every
// write to the watched file. The parent directory is watched rather than
// the file itself so editors that replace the file on save stay tracked.
func (s *Service) Start(ctx context.Context) error {
	defer s.watcher.Close()

	if err := s.watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("watch %s: %w", s.path, err)
	}
	s.logger.Info("watching file", "path", s.path)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("watcher stopped")
			return nil
		case event := <-s.watcher.Events:
			s.handleEvent(ctx, event)
		case err := <-s.watcher.Errors:
			if err != nil {
				s.logger.Error("file watcher error", "error", err)
			}
		}
	}
}

func (s *Service) handleEvent(ctx context.Context, event fsnotify.Event) {
	if filepath.Clean(event.Name) != s.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	s.logger.Debug("file changed", "path", event.Name, "op", event.Op.String())
	s.onChange(ctx)
}
