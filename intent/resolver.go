package intent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mrEkso/n8n-voice2action-telegram/llm"
)

// ErrNoExtractionBackend is returned when audio input arrives and no
// extraction backend is configured. Audio has no fallback path: the
// keyword fallback needs text.
var ErrNoExtractionBackend = errors.New("extraction backend not configured")

// AudioPlaceholder stands in for the original text when the backend
// consumed raw audio and no transcript exists.
const AudioPlaceholder = "[Audio transcription]"

type Resolver struct {
	client llm.Client // nil means fallback-only operation
	model  string
	loc    *time.Location
	log    *slog.Logger

	now func() time.Time // test hook
}

func NewResolver(client llm.Client, model string, loc *time.Location, log *slog.Logger) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		client: client,
		model:  strings.TrimSpace(model),
		loc:    loc,
		log:    log,
		now:    time.Now,
	}
}

func (r *Resolver) Location() *time.Location {
	return r.loc
}

// ResolveText classifies typed or transcribed text. A missing backend or
// a backend failure degrades to the deterministic keyword fallback
// instead of surfacing an error.
func (r *Resolver) ResolveText(ctx context.Context, text string) (Result, error) {
	if r.client == nil {
		r.log.Warn("extraction backend not configured, using fallback detection")
		return Fallback(text), nil
	}

	prompt := BuildTextPrompt(text, r.now(), r.loc)
	res, err := r.client.Generate(ctx, llm.Request{
		Model: r.model,
		Parts: []llm.Part{llm.TextPart(prompt)},
	})
	if err != nil {
		r.log.Warn("extraction failed, using fallback detection", "error", err)
		return Fallback(text), nil
	}

	r.log.Debug("extraction response", "duration", res.Duration, "chars", len(res.Text))
	return ParseExtraction(res.Text, text), nil
}

// ResolveAudio classifies a voice note by sending the audio straight to
// the extraction backend. Backend failures surface to the caller: there
// is no speech-independent fallback.
func (r *Resolver) ResolveAudio(ctx context.Context, audio []byte, mime string) (Result, error) {
	if r.client == nil {
		return Result{}, ErrNoExtractionBackend
	}
	if len(audio) == 0 {
		return Result{}, fmt.Errorf("empty audio input")
	}
	if strings.TrimSpace(mime) == "" {
		mime = "audio/ogg"
	}

	prompt := BuildAudioPrompt(r.now(), r.loc)
	res, err := r.client.Generate(ctx, llm.Request{
		Model: r.model,
		Parts: []llm.Part{
			llm.BlobPart(audio, mime),
			llm.TextPart(prompt),
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("audio extraction failed: %w", err)
	}

	r.log.Debug("audio extraction response", "duration", res.Duration, "chars", len(res.Text))
	return ParseExtraction(res.Text, AudioPlaceholder), nil
}
