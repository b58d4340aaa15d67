package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/echominds/echominds/internal/ports"
)

// BotApp is the chat front-end: clone a voice from a voice message,
// then translate further voice messages into the chosen language and
// answer with the cloned voice.
type BotApp struct {
	bot      *tgbotapi.BotAPI
	voices   ports.VoiceService
	pipeline ports.PipelineService
	storage  ports.ObjectStorage
	defaults ports.VoiceSettings

	sessions *sessionStore
}

func NewBotApp(
	token string,
	voices ports.VoiceService,
	pipeline ports.PipelineService,
	storage ports.ObjectStorage,
	defaults ports.VoiceSettings,
	defaultLang string,
) (*BotApp, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &BotApp{
		bot:      bot,
		voices:   voices,
		pipeline: pipeline,
		storage:  storage,
		defaults: defaults,
		sessions: newSessionStore(defaultLang),
	}, nil
}

func (app *BotApp) Bot() *tgbotapi.BotAPI {
	return app.bot
}

// Run blocks on the update loop until the channel closes.
func (app *BotApp) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := app.bot.GetUpdatesChan(u)
	log.Printf("[bot_loop] started username=@%s", app.bot.Self.UserName)

	for update := range updates {
		ctx := context.Background()

		switch {
		case update.Message != nil:
			app.handleMessage(ctx, update.Message)
		case update.CallbackQuery != nil:
			app.handleCallback(ctx, update.CallbackQuery)
		}
	}
}

func (app *BotApp) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch {
	case msg.IsCommand():
		app.handleCommand(ctx, msg)
	case msg.Voice != nil || msg.Audio != nil:
		app.handleVoice(ctx, msg)
	default:
		app.reply(msg.Chat.ID, "Send a voice message, or /help for the commands.")
	}
}

func (app *BotApp) reply(chatID int64, text string) {
	if _, err := app.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("[bot] send fail: %v", err)
	}
}
