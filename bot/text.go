package bot

import "context"

// handleText processes a typed command. Admission happens before any
// work: with the default limit of one slot, messages are handled
// end-to-end one at a time, strictly in arrival order.
func (b *Bot) handleText(ctx context.Context, m Message) {
	err := b.queue.Do(func() error {
		processingID, err := b.transport.SendMessage(ctx, m.ChatID, "💭 Analyzing...", nil)
		if err != nil {
			return err
		}

		b.log.Info("text message", "chat_id", m.ChatID, "chars", len(m.Text))

		res, err := b.resolver.ResolveText(ctx, m.Text)
		if err != nil {
			b.edit(ctx, m.ChatID, processingID, "❌ Error: "+err.Error())
			return nil
		}
		b.log.Info("intent resolved", "intent", string(res.Intent))

		if err := b.respondToIntent(ctx, m.ChatID, processingID, res, m.Text, m.UserID); err != nil {
			b.edit(ctx, m.ChatID, processingID, "❌ Error: "+err.Error())
		}
		return nil
	})
	if err != nil {
		b.log.Error("text handler failed", "chat_id", m.ChatID, "error", err)
	}
}
