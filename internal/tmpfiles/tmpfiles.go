// Package tmpfiles removes stale temporary audio files so interrupted
// downloads do not pile up across restarts.
package tmpfiles

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// CleanOlderThan deletes regular files in dir older than maxAge and
// returns how many were removed.
func CleanOlderThan(dir string, maxAge time.Duration, log *slog.Logger) (int, error) {
	if log == nil {
		log = slog.Default()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	deleted := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) <= maxAge {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Warn("failed to delete old temp file", "path", path, "error", err)
			continue
		}
		deleted++
	}
	if deleted > 0 {
		log.Info("temp cleanup", "deleted", deleted, "dir", dir)
	}
	return deleted, nil
}

// Loop runs CleanOlderThan on an interval until ctx is cancelled.
func Loop(ctx context.Context, dir string, maxAge, interval time.Duration, log *slog.Logger) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := CleanOlderThan(dir, maxAge, log); err != nil && !os.IsNotExist(err) {
				if log != nil {
					log.Warn("temp cleanup failed", "dir", dir, "error", err)
				}
			}
		}
	}
}
