package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/echominds/echominds/internal/ports"
	"github.com/echominds/echominds/internal/translate"
)

func (app *BotApp) handleVoice(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	sess := app.sessions.get(chatID)

	fileID := ""
	switch {
	case msg.Voice != nil:
		fileID = msg.Voice.FileID
	case msg.Audio != nil:
		fileID = msg.Audio.FileID
	}

	log.Printf("[voice] start chatID=%d fileID=%s mode=%d", chatID, fileID, sess.Mode)

	path, err := app.downloadVoice(fileID)
	if err != nil {
		log.Printf("[voice] download fail chatID=%d err=%v", chatID, err)
		app.reply(chatID, "⚠️ Could not download the voice message.")
		return
	}
	defer os.Remove(path)

	if sess.Mode == modeClone {
		app.cloneFromSample(ctx, chatID, sess, path)
		return
	}

	app.translateVoice(ctx, chatID, sess, path)
}

func (app *BotApp) cloneFromSample(ctx context.Context, chatID int64, sess *session, path string) {
	app.reply(chatID, "🧬 Cloning your voice, this takes 10-15 seconds...")

	voice, err := app.voices.Clone(ctx, sess.CloneName, path)
	if err != nil {
		log.Printf("[voice] clone fail chatID=%d err=%v", chatID, err)
		app.reply(chatID, "⚠️ Cloning failed: "+err.Error())
		return
	}

	sess.Mode = modeTranslate
	sess.VoiceID = voice.VoiceID
	sess.VoiceName = voice.Name

	app.reply(chatID, fmt.Sprintf(
		"🎉 Voice %q cloned (id %s).\nTarget language: %s — change with /lang.\nNow send a voice message to translate.",
		voice.Name, voice.VoiceID, translate.LanguageName(sess.TargetLang),
	))
}

func (app *BotApp) translateVoice(ctx context.Context, chatID int64, sess *session, path string) {
	if sess.VoiceID == "" {
		app.reply(chatID, "🎤 Clone your voice first: /clone")
		return
	}

	job, err := app.pipeline.Process(ctx, ports.PipelineRequest{
		AudioPath:  path,
		VoiceID:    sess.VoiceID,
		TargetLang: sess.TargetLang,
		Settings:   app.defaults,
	})
	if err != nil {
		log.Printf("[voice] pipeline fail chatID=%d err=%v", chatID, err)
		app.reply(chatID, "⚠️ "+err.Error())
		return
	}

	app.reply(chatID, fmt.Sprintf("📝 %s\n\n🗣 [%s → %s] %s",
		job.Transcript,
		translate.LanguageName(job.SourceLang),
		translate.LanguageName(job.TargetLang),
		job.Translation,
	))

	outPath, size, err := app.fetchOutput(ctx, job.OutputKey)
	if err != nil {
		log.Printf("[voice] fetch output fail chatID=%d err=%v", chatID, err)
		app.reply(chatID, "⚠️ Could not fetch the synthesized audio.")
		return
	}
	defer os.Remove(outPath)

	voiceMsg := tgbotapi.NewVoice(chatID, tgbotapi.FilePath(outPath))
	voiceMsg.Caption = fmt.Sprintf("🔊 %s (%s)", translate.LanguageName(job.TargetLang), humanize.Bytes(uint64(size)))
	if _, err := app.bot.Send(voiceMsg); err != nil {
		log.Printf("[voice] send fail chatID=%d err=%v", chatID, err)
	}
}

func (app *BotApp) downloadVoice(fileID string) (string, error) {
	file, err := app.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("get file: %w", err)
	}

	resp, err := http.Get(file.Link(app.bot.Token))
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	path := filepath.Join(os.TempDir(), fileID+".ogg")
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("save: %w", err)
	}

	return path, nil
}

func (app *BotApp) fetchOutput(ctx context.Context, key string) (string, int64, error) {
	obj, err := app.storage.GetObject(ctx, key)
	if err != nil {
		return "", 0, err
	}
	defer obj.Close()

	path := filepath.Join(os.TempDir(), filepath.Base(key))
	out, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}
	defer out.Close()

	size, err := io.Copy(out, obj)
	if err != nil {
		os.Remove(path)
		return "", 0, err
	}

	return path, size, nil
}
