package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mrEkso/n8n-voice2action-telegram/confirm"
	"github.com/mrEkso/n8n-voice2action-telegram/internal/pathutil"
	"github.com/mrEkso/n8n-voice2action-telegram/llm"
	"github.com/mrEkso/n8n-voice2action-telegram/providers/gemini"
)

// extractionClientFromViper builds the Gemini client, or returns nil
// when no API key is configured. A nil client puts the resolver into
// fallback-only mode for text and makes audio extraction a
// configuration error.
func extractionClientFromViper(ctx context.Context, log *slog.Logger) (llm.Client, error) {
	apiKey := strings.TrimSpace(viper.GetString("gemini.api_key"))
	if apiKey == "" {
		log.Warn("gemini.api_key not set - running in fallback mode")
		return nil, nil
	}
	client, err := gemini.New(ctx, apiKey, viper.GetString("gemini.model"))
	if err != nil {
		return nil, err
	}
	log.Info("gemini extraction backend initialized", "model", client.Model())
	return client, nil
}

// confirmStoreFromViper selects the pending-action store. "memory"
// (default) keeps proposals in process; "sqlite" survives restarts.
func confirmStoreFromViper(log *slog.Logger) (confirm.Store, func(), error) {
	ttl := viper.GetDuration("confirm.ttl")

	switch strings.ToLower(strings.TrimSpace(viper.GetString("confirm.store"))) {
	case "", "memory":
		store := confirm.NewMemoryStore(ttl)
		if ttl > 0 {
			log.Info("pending actions expire", "ttl", ttl.String())
		}
		return store, store.Close, nil

	case "sqlite":
		dsn := strings.TrimSpace(viper.GetString("confirm.sqlite_dsn"))
		if dsn == "" {
			dataDir := pathutil.ExpandHomePath(viper.GetString("paths.data"))
			dsn = filepath.Join(dataDir, "confirmations.db")
		}
		store, err := confirm.NewSQLiteStore(dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("open confirmation store: %w", err)
		}
		log.Info("sqlite confirmation store opened", "dsn", dsn)
		return store, func() { _ = store.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown confirm.store: %q", viper.GetString("confirm.store"))
	}
}
