package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrEkso/n8n-voice2action-telegram/bot"
	"github.com/mrEkso/n8n-voice2action-telegram/bot/telegram"
	"github.com/mrEkso/n8n-voice2action-telegram/confirm"
	"github.com/mrEkso/n8n-voice2action-telegram/gcal"
	"github.com/mrEkso/n8n-voice2action-telegram/gmail"
	"github.com/mrEkso/n8n-voice2action-telegram/intent"
	"github.com/mrEkso/n8n-voice2action-telegram/internal/pathutil"
	"github.com/mrEkso/n8n-voice2action-telegram/internal/tmpfiles"
	"github.com/mrEkso/n8n-voice2action-telegram/queue"
	"github.com/mrEkso/n8n-voice2action-telegram/stt"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the assistant",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log := newLogger()

		loc, err := time.LoadLocation(viper.GetString("user.timezone"))
		if err != nil {
			return fmt.Errorf("invalid user.timezone: %w", err)
		}

		dataDir := pathutil.ExpandHomePath(viper.GetString("paths.data"))
		tempDir := pathutil.ExpandHomePath(viper.GetString("paths.temp"))
		modelsDir := pathutil.ExpandHomePath(viper.GetString("paths.models"))

		client, err := extractionClientFromViper(ctx, log)
		if err != nil {
			return err
		}
		resolver := intent.NewResolver(client, viper.GetString("gemini.model"), loc, log)

		store, closeStore, err := confirmStoreFromViper(log)
		if err != nil {
			return err
		}
		defer closeStore()

		emailSender := gmail.NewSender(dataDir, log)
		eventCreator := gcal.NewCreator(dataDir, loc, log)
		lifecycle := confirm.NewLifecycle(store, emailSender, eventCreator, log)

		transcriber := stt.NewWhisperCPP(
			modelsDir,
			viper.GetString("whisper.model"),
			viper.GetString("whisper.language"),
			log,
		)

		q := queue.New(viper.GetInt("limits.max_concurrent_requests"))

		tg, err := telegram.New(viper.GetString("telegram.token"), log)
		if err != nil {
			return err
		}

		b := bot.New(tg, q, resolver, store, lifecycle, transcriber, bot.Config{
			AllowedUsers:  viper.GetStringSlice("telegram.allowed_users"),
			AudioMethod:   viper.GetString("audio.processing_method"),
			TempDir:       tempDir,
			MaxAudioBytes: viper.GetInt64("limits.max_audio_size_mb") << 20,
		}, log)

		if viper.GetBool("cleanup.enabled") {
			maxAge := time.Duration(viper.GetInt("cleanup.max_age_hours")) * time.Hour
			go tmpfiles.Loop(ctx, tempDir, maxAge, 15*time.Minute, log)
		}

		log.Info("voice2action started",
			"audio_method", viper.GetString("audio.processing_method"),
			"max_concurrent", q.Status().Max,
			"extraction_configured", client != nil,
		)

		err = tg.Listen(ctx, b)
		if ctx.Err() != nil {
			log.Info("shutting down")
			return nil
		}
		return err
	},
}
