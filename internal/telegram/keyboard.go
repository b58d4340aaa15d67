package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/echominds/echominds/internal/translate"
)

const keyboardColumns = 3

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for _, lang := range translate.SupportedLanguages {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(lang.Name, "lang:"+lang.Code))
		if len(row) == keyboardColumns {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
