package bot

import (
	"context"
	"fmt"
	"runtime"
	"strings"
)

const startText = `🎙️ Voice Assistant Ready!

Send me a voice message and I'll:
• Transcribe it
• Analyze your intent with AI
• Execute actions (email, calendar, etc.)

Commands:
/start - Show this message
/status - Check system status
/help - Get help`

const helpText = `📖 Help

Voice Commands:
• "Send email to [address] with subject [subject] and text [message]"
• "Create calendar event [title] tomorrow at 3 PM"
• Ask any question for AI response

Examples:
🗣 "Send email to john@example.com about meeting"
🗣 "Schedule team meeting tomorrow at 2 PM"
🗣 "What's the weather like today?"`

func (b *Bot) handleCommand(ctx context.Context, m Message) {
	cmd := strings.ToLower(strings.TrimSpace(m.Text))
	if i := strings.IndexAny(cmd, " @"); i > 0 {
		cmd = cmd[:i]
	}

	switch cmd {
	case "/start":
		b.send(ctx, m.ChatID, startText)
	case "/help":
		b.send(ctx, m.ChatID, helpText)
	case "/status":
		b.send(ctx, m.ChatID, b.statusText())
	default:
		// Unknown commands are ignored, same as plain bot chatter.
	}
}

func (b *Bot) statusText() string {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	st := b.queue.Status()
	return fmt.Sprintf(
		"📊 System Status\n\nGoroutines: %d\nHeap: %.1f MB\nActive Requests: %d/%d\nQueued: %d\nAudio method: %s",
		runtime.NumGoroutine(),
		float64(mem.HeapAlloc)/(1<<20),
		st.Active, st.Max,
		st.Queued,
		b.cfg.AudioMethod,
	)
}
