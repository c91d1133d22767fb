package bot

import (
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram caps messages at 4096 characters; a full season report is longer.
const maxMessageLen = 4000

// Notifier pushes rendered reports to a Telegram chat.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewNotifier(token string, chatID int64) (*Notifier, error) {
	if chatID == 0 {
		return nil, fmt.Errorf("chat ID not set")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	slog.Info("Authorized on account", "username", bot.Self.UserName)
	return &Notifier{bot: bot, chatID: chatID}, nil
}

// Send delivers text to the configured chat, splitting on line boundaries to
// stay inside the message size limit.
func (n *Notifier) Send(text string) error {
	for _, chunk := range splitMessage(text) {
		msg := tgbotapi.NewMessage(n.chatID, chunk)
		if _, err := n.bot.Send(msg); err != nil {
			slog.Error("Error sending message", "error", err)
			return err
		}
	}
	return nil
}

func splitMessage(text string) []string {
	if len(text) <= maxMessageLen {
		return []string{text}
	}

	var chunks []string
	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if sb.Len()+len(line)+1 > maxMessageLen && sb.Len() > 0 {
			chunks = append(chunks, sb.String())
			sb.Reset()
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if sb.Len() > 0 {
		chunks = append(chunks, sb.String())
	}
	return chunks
}
