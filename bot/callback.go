package bot

import (
	"context"
	"fmt"

	"github.com/mrEkso/n8n-voice2action-telegram/confirm"
)

// OnCallback handles a confirmation-button press. The callback is
// acknowledged to the platform before anything else so the button stops
// spinning even if the transition itself fails; callbacks are not
// admitted through the queue — they resolve quickly and must not wait
// behind a long transcription.
func (b *Bot) OnCallback(ctx context.Context, q CallbackQuery) {
	b.log.Info("callback query received", "data", q.Data)

	if err := b.transport.AnswerCallback(ctx, q.ID); err != nil {
		b.log.Error("failed to answer callback query", "error", err)
	}

	if action, _, err := confirm.ParseCallback(q.Data); err == nil && action == confirm.ActionConfirm {
		if err := b.transport.ClearKeyboard(ctx, q.ChatID, q.MessageID); err != nil {
			b.log.Warn("failed to clear keyboard", "error", err)
		}
		b.edit(ctx, q.ChatID, q.MessageID, "⏳ Выполняю...")
	}

	outcome := b.lifecycle.Handle(ctx, q.Data)

	switch outcome.Kind {
	case confirm.OutcomeInvalid:
		b.send(ctx, q.ChatID, "❌ Ошибка обработки")

	case confirm.OutcomeStale:
		b.send(ctx, q.ChatID, "⚠️ Запрос устарел. Попробуйте снова.")

	case confirm.OutcomeCancelled:
		b.edit(ctx, q.ChatID, q.MessageID, "❌ Отменено")

	case confirm.OutcomeEdit:
		b.edit(ctx, q.ChatID, q.MessageID, fmt.Sprintf(
			"✏️ Чтобы изменить, отправьте новую команду с исправлениями.\n\nОригинальная команда:\n%q",
			outcome.OriginalText,
		))

	case confirm.OutcomeExecuted:
		if outcome.ActionKind == confirm.KindEmail {
			b.edit(ctx, q.ChatID, q.MessageID, "✅ Email отправлен!\n\n"+outcome.Message)
		} else {
			b.edit(ctx, q.ChatID, q.MessageID, "✅ Событие создано!\n\n"+outcome.Message)
		}

	case confirm.OutcomeFailed:
		if outcome.ActionKind == confirm.KindEmail {
			b.edit(ctx, q.ChatID, q.MessageID, "❌ Ошибка отправки: "+outcome.Message)
		} else {
			b.edit(ctx, q.ChatID, q.MessageID, "❌ Ошибка создания: "+outcome.Message)
		}
	}
}
