package bot

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mrEkso/n8n-voice2action-telegram/confirm"
	"github.com/mrEkso/n8n-voice2action-telegram/intent"
	"github.com/mrEkso/n8n-voice2action-telegram/queue"
	"github.com/mrEkso/n8n-voice2action-telegram/stt"
)

// Audio processing methods.
const (
	AudioMethodWhisper = "whisper" // transcribe locally, then extract from text
	AudioMethodGemini  = "gemini"  // upload audio straight to the extraction backend
)

type Config struct {
	// AllowedUsers restricts who may talk to the bot. Empty means no
	// restriction.
	AllowedUsers []string
	AudioMethod  string
	TempDir      string
	// MaxAudioBytes rejects oversized voice notes before download.
	// Zero disables the check.
	MaxAudioBytes int64
}

type Bot struct {
	transport   Transport
	queue       *queue.Queue
	resolver    *intent.Resolver
	store       confirm.Store
	lifecycle   *confirm.Lifecycle
	transcriber stt.Transcriber
	cfg         Config
	log         *slog.Logger
}

func New(
	transport Transport,
	q *queue.Queue,
	resolver *intent.Resolver,
	store confirm.Store,
	lifecycle *confirm.Lifecycle,
	transcriber stt.Transcriber,
	cfg Config,
	log *slog.Logger,
) *Bot {
	if log == nil {
		log = slog.Default()
	}
	if strings.TrimSpace(cfg.AudioMethod) == "" {
		cfg.AudioMethod = AudioMethodWhisper
	}
	return &Bot{
		transport:   transport,
		queue:       q,
		resolver:    resolver,
		store:       store,
		lifecycle:   lifecycle,
		transcriber: transcriber,
		cfg:         cfg,
		log:         log,
	}
}

// OnMessage routes an inbound message to the command, voice, or text
// handler.
func (b *Bot) OnMessage(ctx context.Context, m Message) {
	if !b.authorized(m.UserID) {
		b.send(ctx, m.ChatID, "⛔ Unauthorized user")
		return
	}
	switch {
	case m.Voice != nil:
		b.handleVoice(ctx, m)
	case strings.HasPrefix(m.Text, "/"):
		b.handleCommand(ctx, m)
	default:
		b.handleText(ctx, m)
	}
}

func (b *Bot) authorized(userID int64) bool {
	if len(b.cfg.AllowedUsers) == 0 {
		return true
	}
	id := strconv.FormatInt(userID, 10)
	for _, allowed := range b.cfg.AllowedUsers {
		if strings.TrimSpace(allowed) == id {
			return true
		}
	}
	return false
}

// respondToIntent presents the resolved intent to the user: a pending
// proposal with confirmation buttons for email/calendar, or the direct
// answer for general chatter. processingID is the in-progress status
// message to edit or delete.
func (b *Bot) respondToIntent(ctx context.Context, chatID int64, processingID int, res intent.Result, originalText string, userID int64) error {
	uid := strconv.FormatInt(userID, 10)

	switch res.Intent {
	case intent.KindEmail:
		action := confirm.NewEmailAction(res, originalText, uid)
		if err := b.store.Create(ctx, action); err != nil {
			return err
		}
		if _, err := b.transport.SendMessage(ctx, chatID, emailPreview(action.Email), confirmKeyboard(confirm.KindEmail, action.ID)); err != nil {
			return err
		}

	case intent.KindCalendar:
		action := confirm.NewCalendarAction(res, originalText, uid, time.Now(), b.resolver.Location())
		if err := b.store.Create(ctx, action); err != nil {
			return err
		}
		if _, err := b.transport.SendMessage(ctx, chatID, calendarPreview(action.Calendar, res.Category, b.resolver.Location()), confirmKeyboard(confirm.KindCalendar, action.ID)); err != nil {
			return err
		}

	default:
		return b.transport.EditMessageText(ctx, chatID, processingID, "💬 "+res.Response)
	}

	// The proposal replaces the "analyzing" status message.
	if err := b.transport.DeleteMessage(ctx, chatID, processingID); err != nil {
		b.log.Warn("could not delete processing message", "error", err)
	}
	return nil
}

func (b *Bot) send(ctx context.Context, chatID int64, text string) {
	if _, err := b.transport.SendMessage(ctx, chatID, text, nil); err != nil {
		b.log.Error("failed to send message", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) edit(ctx context.Context, chatID int64, messageID int, text string) {
	if err := b.transport.EditMessageText(ctx, chatID, messageID, text); err != nil {
		b.log.Error("failed to edit message", "chat_id", chatID, "error", err)
	}
}
