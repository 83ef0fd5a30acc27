package stt

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// WhisperCPP transcribes audio by shelling out to a locally installed
// whisper.cpp binary with a ggml model. OGG voice notes are converted to
// 16 kHz mono WAV with ffmpeg first; whisper.cpp reads WAV reliably.
type WhisperCPP struct {
	modelsDir string
	modelName string
	language  string
	log       *slog.Logger
}

func NewWhisperCPP(modelsDir, modelName, language string, log *slog.Logger) *WhisperCPP {
	if strings.TrimSpace(modelName) == "" {
		modelName = "tiny"
	}
	if strings.TrimSpace(language) == "" {
		language = "auto"
	}
	if log == nil {
		log = slog.Default()
	}
	return &WhisperCPP{
		modelsDir: strings.TrimSpace(modelsDir),
		modelName: modelName,
		language:  language,
		log:       log,
	}
}

func (w *WhisperCPP) ModelName() string {
	return w.modelName
}

func (w *WhisperCPP) binaryPath() string {
	return filepath.Join(w.modelsDir, "whisper.cpp", "main")
}

func (w *WhisperCPP) modelPath() string {
	return filepath.Join(w.modelsDir, fmt.Sprintf("ggml-%s.bin", w.modelName))
}

// Installed reports whether both the whisper.cpp binary and the model
// file are present.
func (w *WhisperCPP) Installed() bool {
	if _, err := os.Stat(w.binaryPath()); err != nil {
		return false
	}
	if _, err := os.Stat(w.modelPath()); err != nil {
		return false
	}
	return true
}

func (w *WhisperCPP) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if !w.Installed() {
		return "", fmt.Errorf("whisper.cpp is not installed under %s", w.modelsDir)
	}

	w.log.Info("transcribing audio", "path", audioPath, "model", w.modelName)

	wavPath, converted, err := w.ensureWAV(ctx, audioPath)
	if err != nil {
		return "", err
	}
	if converted {
		defer func() {
			if err := os.Remove(wavPath); err != nil {
				w.log.Warn("failed to delete converted wav", "path", wavPath, "error", err)
			}
		}()
	}

	var out, errOut bytes.Buffer
	cmd := exec.CommandContext(ctx, w.binaryPath(),
		"-m", w.modelPath(),
		"-f", wavPath,
		"-l", w.language,
		"-nt", // no timestamps, plain text output
	)
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("whisper.cpp failed: %w: %s", err, strings.TrimSpace(errOut.String()))
	}

	text := strings.TrimSpace(out.String())
	w.log.Info("transcription complete", "chars", len(text))
	return text, nil
}

// ensureWAV converts the input to WAV when it is not one already. The
// second return value reports whether a new file was created.
func (w *WhisperCPP) ensureWAV(ctx context.Context, audioPath string) (string, bool, error) {
	if strings.EqualFold(filepath.Ext(audioPath), ".wav") {
		return audioPath, false, nil
	}

	wavPath := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".wav"
	var errOut bytes.Buffer
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-i", audioPath,
		"-ar", "16000",
		"-ac", "1",
		"-y",
		wavPath,
	)
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return "", false, fmt.Errorf("ffmpeg conversion failed: %w: %s", err, strings.TrimSpace(errOut.String()))
	}
	return wavPath, true, nil
}
