package notify

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/echominds/echominds/internal/ports"
)

// TelegramNotifier forwards failures to the admin chat. The bot is
// attached after it has been initialized; until then (or without an
// admin chat) failures only land in the log.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(chatID int64) *TelegramNotifier {
	return &TelegramNotifier{chatID: chatID}
}

func (n *TelegramNotifier) SetBot(bot *tgbotapi.BotAPI) {
	n.bot = bot
}

func (n *TelegramNotifier) Notify(ctx context.Context, err error, details string) {
	if n.bot == nil || n.chatID == 0 {
		log.Printf("[notify] %s: %v", details, err)
		return
	}

	text := fmt.Sprintf("❗ echominds error\n\n%s\n\n%v", details, err)
	if _, sendErr := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); sendErr != nil {
		log.Printf("[notify] send fail: %v", sendErr)
	}
}

// Noop satisfies the port where no alerting is wanted; failures still
// land in the log.
type Noop struct{}

func (Noop) Notify(_ context.Context, err error, details string) {
	log.Printf("[notify] %s: %v", details, err)
}

var _ ports.Notifier = (*TelegramNotifier)(nil)
var _ ports.Notifier = Noop{}
