package bot

import (
	"context"
	"os"

	"github.com/mrEkso/n8n-voice2action-telegram/intent"
)

// handleVoice processes a voice note. Depending on configuration the
// audio either goes through local transcription and the text resolver,
// or is uploaded directly to the extraction backend. The direct path has
// no fallback: a missing backend is a configuration error.
func (b *Bot) handleVoice(ctx context.Context, m Message) {
	if b.cfg.MaxAudioBytes > 0 && m.Voice.FileSize > b.cfg.MaxAudioBytes {
		b.send(ctx, m.ChatID, "⚠️ Аудио слишком большое")
		return
	}

	err := b.queue.Do(func() error {
		processingID, err := b.transport.SendMessage(ctx, m.ChatID, "🎤 Processing voice message...", nil)
		if err != nil {
			return err
		}

		voicePath, err := b.transport.DownloadFile(ctx, m.Voice.FileID, b.cfg.TempDir)
		if err != nil {
			b.edit(ctx, m.ChatID, processingID, "❌ Error: "+err.Error())
			return nil
		}
		defer func() {
			if err := os.Remove(voicePath); err != nil {
				b.log.Warn("failed to delete temp voice file", "path", voicePath, "error", err)
			}
		}()
		b.log.Info("downloaded voice file", "path", voicePath, "duration", m.Voice.Duration)

		var (
			res          intent.Result
			originalText string
		)
		if b.cfg.AudioMethod == AudioMethodGemini {
			b.edit(ctx, m.ChatID, processingID, "🎵 Analyzing audio...")

			audio, err := os.ReadFile(voicePath)
			if err != nil {
				b.edit(ctx, m.ChatID, processingID, "❌ Error: "+err.Error())
				return nil
			}
			res, err = b.resolver.ResolveAudio(ctx, audio, "audio/ogg")
			if err != nil {
				b.edit(ctx, m.ChatID, processingID, "❌ Error: "+err.Error())
				return nil
			}
			originalText = intent.AudioPlaceholder
		} else {
			b.edit(ctx, m.ChatID, processingID, "🔊 Transcribing audio...")

			text, err := b.transcriber.Transcribe(ctx, voicePath)
			if err != nil {
				b.edit(ctx, m.ChatID, processingID, "❌ Error: "+err.Error())
				return nil
			}
			if text == "" {
				b.edit(ctx, m.ChatID, processingID, "❌ Could not transcribe audio")
				return nil
			}
			b.log.Info("transcribed", "chars", len(text))

			b.edit(ctx, m.ChatID, processingID, "💭 Analyzing...")
			res, err = b.resolver.ResolveText(ctx, text)
			if err != nil {
				b.edit(ctx, m.ChatID, processingID, "❌ Error: "+err.Error())
				return nil
			}
			originalText = text
		}
		b.log.Info("intent resolved", "intent", string(res.Intent))

		if err := b.respondToIntent(ctx, m.ChatID, processingID, res, originalText, m.UserID); err != nil {
			b.edit(ctx, m.ChatID, processingID, "❌ Error: "+err.Error())
		}
		return nil
	})
	if err != nil {
		b.log.Error("voice handler failed", "chat_id", m.ChatID, "error", err)
	}
}
