// Package telegram is a minimal Telegram Bot API client: long polling
// for updates plus the handful of methods the handlers need. It
// implements bot.Transport.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrEkso/n8n-voice2action-telegram/bot"
	"github.com/mrEkso/n8n-voice2action-telegram/internal/strutil"
)

const (
	apiBase  = "https://api.telegram.org"
	pollTime = 30 // getUpdates long-poll timeout, seconds
)

// Handler receives decoded updates. bot.Bot satisfies it.
type Handler interface {
	OnMessage(ctx context.Context, m bot.Message)
	OnCallback(ctx context.Context, q bot.CallbackQuery)
}

type Client struct {
	token string
	http  *http.Client
	log   *slog.Logger
}

func New(token string, log *slog.Logger) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("missing telegram bot token")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		token: token,
		http:  &http.Client{Timeout: (pollTime + 10) * time.Second},
		log:   log,
	}, nil
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

func (c *Client) call(ctx context.Context, method string, params any, out any) error {
	body, err := json.Marshal(params)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/bot%s/%s", apiBase, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s failed: %w", method, err)
	}
	defer resp.Body.Close()

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("telegram %s: invalid response: %w", method, err)
	}
	if !decoded.OK {
		return fmt.Errorf("telegram %s: %s", method, decoded.Description)
	}
	if out != nil {
		return json.Unmarshal(decoded.Result, out)
	}
	return nil
}

type update struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		MessageID int `json:"message_id"`
		From      struct {
			ID int64 `json:"id"`
		} `json:"from"`
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
		Text  string `json:"text"`
		Voice *struct {
			FileID   string `json:"file_id"`
			Duration int    `json:"duration"`
			FileSize int64  `json:"file_size"`
		} `json:"voice"`
	} `json:"message"`
	CallbackQuery *struct {
		ID   string `json:"id"`
		From struct {
			ID int64 `json:"id"`
		} `json:"from"`
		Message *struct {
			MessageID int `json:"message_id"`
			Chat      struct {
				ID int64 `json:"id"`
			} `json:"chat"`
		} `json:"message"`
		Data string `json:"data"`
	} `json:"callback_query"`
}

// Listen long-polls for updates until ctx is cancelled, dispatching each
// update to the handler in its own goroutine. Concurrency of the actual
// processing is bounded by the admission queue inside the handler, not
// here.
func (c *Client) Listen(ctx context.Context, h Handler) error {
	var offset int64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var updates []update
		err := c.call(ctx, "getUpdates", map[string]any{
			"offset":          offset,
			"timeout":         pollTime,
			"allowed_updates": []string{"message", "callback_query"},
		}, &updates)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			c.log.Error("getUpdates failed", "error", err)
			time.Sleep(3 * time.Second)
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			c.dispatch(ctx, h, u)
		}
	}
}

func (c *Client) dispatch(ctx context.Context, h Handler, u update) {
	switch {
	case u.Message != nil:
		m := bot.Message{
			ChatID:    u.Message.Chat.ID,
			MessageID: u.Message.MessageID,
			UserID:    u.Message.From.ID,
			Text:      u.Message.Text,
		}
		if u.Message.Voice != nil {
			m.Voice = &bot.Voice{
				FileID:   u.Message.Voice.FileID,
				Duration: u.Message.Voice.Duration,
				FileSize: u.Message.Voice.FileSize,
			}
		}
		go h.OnMessage(ctx, m)

	case u.CallbackQuery != nil && u.CallbackQuery.Message != nil:
		go h.OnCallback(ctx, bot.CallbackQuery{
			ID:        u.CallbackQuery.ID,
			ChatID:    u.CallbackQuery.Message.Chat.ID,
			MessageID: u.CallbackQuery.Message.MessageID,
			UserID:    u.CallbackQuery.From.ID,
			Data:      u.CallbackQuery.Data,
		})
	}
}

type sentMessage struct {
	MessageID int `json:"message_id"`
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, keyboard [][]bot.Button) (int, error) {
	params := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	if keyboard != nil {
		params["reply_markup"] = inlineKeyboard(keyboard)
	}
	var sent sentMessage
	if err := c.call(ctx, "sendMessage", params, &sent); err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

func (c *Client) EditMessageText(ctx context.Context, chatID int64, messageID int, text string) error {
	return c.call(ctx, "editMessageText", map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
	}, nil)
}

func (c *Client) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	return c.call(ctx, "deleteMessage", map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
	}, nil)
}

func (c *Client) ClearKeyboard(ctx context.Context, chatID int64, messageID int) error {
	return c.call(ctx, "editMessageReplyMarkup", map[string]any{
		"chat_id":      chatID,
		"message_id":   messageID,
		"reply_markup": map[string]any{"inline_keyboard": [][]any{}},
	}, nil)
}

func (c *Client) AnswerCallback(ctx context.Context, callbackID string) error {
	return c.call(ctx, "answerCallbackQuery", map[string]any{
		"callback_query_id": callbackID,
	}, nil)
}

// DownloadFile resolves a file id through getFile and streams it into
// destDir. The caller owns the returned path and its cleanup.
func (c *Client) DownloadFile(ctx context.Context, fileID, destDir string) (string, error) {
	var file struct {
		FilePath string `json:"file_path"`
	}
	if err := c.call(ctx, "getFile", map[string]any{"file_id": fileID}, &file); err != nil {
		return "", err
	}
	if file.FilePath == "" {
		return "", fmt.Errorf("telegram getFile returned no file path")
	}

	url := fmt.Sprintf("%s/file/bot%s/%s", apiBase, c.token, file.FilePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("file download failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("file download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}
	ext := filepath.Ext(file.FilePath)
	if ext == "" {
		ext = ".ogg"
	}
	destPath := filepath.Join(destDir, fmt.Sprintf("voice_%d%s", time.Now().UnixNano(), ext))

	out, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(destPath)
		return "", err
	}
	return destPath, nil
}

// callbackDataMax is Telegram's limit on callback_data, in bytes.
const callbackDataMax = 64

func inlineKeyboard(rows [][]bot.Button) map[string]any {
	keyboard := make([][]map[string]string, 0, len(rows))
	for _, row := range rows {
		buttons := make([]map[string]string, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, map[string]string{
				"text":          b.Text,
				"callback_data": strutil.TruncateUTF8(b.Data, callbackDataMax),
			})
		}
		keyboard = append(keyboard, buttons)
	}
	return map[string]any{"inline_keyboard": keyboard}
}
