package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(
	r chi.Router,
	hVoice *VoiceHandler,
	hSpeech *SpeechHandler,
	apiKey string,
) {
	r.Route("/", func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			httprate.LimitByIP(60, time.Minute),
			AuthMiddleware(apiKey),
		)

		// voices
		pr.Post("/voices", hVoice.Clone)
		pr.Get("/voices", hVoice.List)
		pr.Delete("/voices/{voice_id}", hVoice.Delete)

		// translate-speech
		pr.Post("/speech/translate", hSpeech.Translate)
		pr.Get("/speech/history", hSpeech.History)
		pr.Delete("/speech/history", hSpeech.ClearHistory)
		pr.Get("/outputs/*", hSpeech.GetOutput)

		pr.Get("/languages", hSpeech.Languages)
	})
}
