package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "voice2action",
	Short: "Telegram voice assistant: voice/text commands to email and calendar actions",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./voice2action.yaml)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() error {
	if strings.TrimSpace(cfgFile) != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("voice2action")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("telegram.token", "")
	viper.SetDefault("telegram.allowed_users", []string{})
	viper.SetDefault("gemini.api_key", "")
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("whisper.model", "tiny")
	viper.SetDefault("whisper.language", "auto")
	viper.SetDefault("audio.processing_method", "whisper")
	viper.SetDefault("limits.max_concurrent_requests", 1)
	viper.SetDefault("limits.max_audio_size_mb", 20)
	viper.SetDefault("paths.data", "./data")
	viper.SetDefault("paths.temp", "./temp")
	viper.SetDefault("paths.models", "./models")
	viper.SetDefault("user.timezone", "Europe/Berlin")
	viper.SetDefault("confirm.store", "memory")
	viper.SetDefault("confirm.sqlite_dsn", "")
	viper.SetDefault("confirm.ttl", "0")
	viper.SetDefault("cleanup.enabled", true)
	viper.SetDefault("cleanup.max_age_hours", 1)
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil // config file is optional, env vars suffice
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(strings.TrimSpace(viper.GetString("log.level"))) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
