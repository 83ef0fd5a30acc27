package bot

import (
	"fmt"
	"time"

	"github.com/mrEkso/n8n-voice2action-telegram/confirm"
	"github.com/mrEkso/n8n-voice2action-telegram/intent"
)

var categoryEmoji = map[intent.Category]string{
	intent.CategoryHome:      "🏠",
	intent.CategoryWork:      "💼",
	intent.CategorySport:     "⚽",
	intent.CategoryImportant: "🔴",
	intent.CategoryCasual:    "🔵",
}

func emailPreview(p confirm.EmailPayload) string {
	to := p.To
	if to == "" {
		to = "(not specified)"
	}
	return fmt.Sprintf(
		"📧 Email Preview\n\nTo: %s\nSubject: %s\nBody:\n%s\n\nОтправить это письмо?",
		to, p.Subject, p.Body,
	)
}

func calendarPreview(p confirm.CalendarPayload, cat intent.Category, loc *time.Location) string {
	emoji, ok := categoryEmoji[cat]
	if !ok {
		emoji = categoryEmoji[intent.CategoryCasual]
	}
	return fmt.Sprintf(
		"📅 Calendar Event Preview\n\n%s Title: %s\nStart: %s\nEnd: %s\nCategory: %s\nDescription: %s\n\nСоздать это событие?",
		emoji,
		p.Title,
		p.StartTime.In(loc).Format("02.01.2006 15:04"),
		p.EndTime.In(loc).Format("02.01.2006 15:04"),
		cat,
		p.Description,
	)
}

func confirmKeyboard(kind confirm.Kind, id string) [][]Button {
	confirmLabel := "✅ Создать"
	if kind == confirm.KindEmail {
		confirmLabel = "✅ Отправить"
	}
	return [][]Button{
		{
			{Text: confirmLabel, Data: confirm.CallbackData(confirm.ActionConfirm, id)},
			{Text: "❌ Отменить", Data: confirm.CallbackData(confirm.ActionCancel, id)},
		},
		{
			{Text: "✏️ Изменить", Data: confirm.CallbackData(confirm.ActionEdit, id)},
		},
	}
}
