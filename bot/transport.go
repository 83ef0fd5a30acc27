// Package bot contains the chat-facing handlers: inbound text, voice
// notes, commands, and confirmation-button callbacks. Handlers talk to
// the chat platform only through the Transport interface; message ids
// are opaque handles.
package bot

import "context"

type Message struct {
	ChatID    int64
	MessageID int
	UserID    int64
	Text      string
	Voice     *Voice
}

type Voice struct {
	FileID   string
	Duration int
	FileSize int64
}

type CallbackQuery struct {
	ID        string
	ChatID    int64
	MessageID int
	UserID    int64
	Data      string
}

type Button struct {
	Text string
	Data string
}

type Transport interface {
	// SendMessage returns the id of the sent message. keyboard may be
	// nil for a plain message.
	SendMessage(ctx context.Context, chatID int64, text string, keyboard [][]Button) (int, error)
	EditMessageText(ctx context.Context, chatID int64, messageID int, text string) error
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
	ClearKeyboard(ctx context.Context, chatID int64, messageID int) error
	// AnswerCallback acknowledges a callback query to the platform.
	AnswerCallback(ctx context.Context, callbackID string) error
	// DownloadFile fetches a platform file into destDir and returns the
	// local path.
	DownloadFile(ctx context.Context, fileID, destDir string) (string, error)
}
