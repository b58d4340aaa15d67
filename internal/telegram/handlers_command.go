package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/echominds/echominds/internal/translate"
)

const helpText = `🎙 EchoMinds — clone your voice, speak any language.

/clone <name> — next voice message becomes your voice sample (10-30s of clean speech works best)
/lang — pick the target language
/voices — list your cloned voices
/help — this message

Once a voice is cloned, just send a voice message and I reply with it translated, in your voice.`

func (app *BotApp) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	sess := app.sessions.get(chatID)

	switch msg.Command() {
	case "start", "help":
		app.reply(chatID, helpText)

	case "clone":
		name := strings.TrimSpace(msg.CommandArguments())
		if name == "" {
			name = fmt.Sprintf("voice_%d", chatID)
		}
		sess.Mode = modeClone
		sess.CloneName = name
		app.reply(chatID, fmt.Sprintf("🧬 Recording sample for %q. Send a voice message (10-30 seconds of clean speech).", name))

	case "lang":
		msgOut := tgbotapi.NewMessage(chatID, "🌍 Pick the target language:")
		msgOut.ReplyMarkup = languageKeyboard()
		if _, err := app.bot.Send(msgOut); err != nil {
			log.Printf("[bot] lang keyboard fail: %v", err)
		}

	case "voices":
		voices, err := app.voices.List(ctx)
		if err != nil {
			app.reply(chatID, "⚠️ Could not list voices: "+err.Error())
			return
		}
		if len(voices) == 0 {
			app.reply(chatID, "No cloned voices yet. Start with /clone.")
			return
		}
		var b strings.Builder
		b.WriteString("Your voices:\n")
		for _, v := range voices {
			fmt.Fprintf(&b, "• %s — %s\n", v.Name, v.VoiceID)
		}
		app.reply(chatID, b.String())

	default:
		app.reply(chatID, "Unknown command. /help")
	}
}

func (app *BotApp) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	defer func() {
		if _, err := app.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			log.Printf("[bot] callback ack fail: %v", err)
		}
	}()

	data := cb.Data
	if !strings.HasPrefix(data, "lang:") {
		return
	}

	code := strings.TrimPrefix(data, "lang:")
	if !translate.IsSupported(code) {
		return
	}

	chatID := cb.Message.Chat.ID
	sess := app.sessions.get(chatID)
	sess.TargetLang = code

	app.reply(chatID, fmt.Sprintf("✅ Target language: %s", translate.LanguageName(code)))
}
