package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/echominds/echominds/internal/config"
	"github.com/echominds/echominds/internal/delivery"
	"github.com/echominds/echominds/internal/infra"
	"github.com/echominds/echominds/internal/notify"
	"github.com/echominds/echominds/internal/pipeline"
	"github.com/echominds/echominds/internal/ports"
	"github.com/echominds/echominds/internal/speech"
	"github.com/echominds/echominds/internal/telegram"
	"github.com/echominds/echominds/internal/translate"
	"github.com/echominds/echominds/internal/voices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// CONFIG / DB INIT
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			log.Printf("config: %v", e)
		}
		log.Fatal("invalid configuration")
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}
	defer db.Close()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	storage, err := infra.NewS3Client()
	if err != nil {
		log.Fatalf("failed to init s3: %v", err)
	}

	// =========================================================================
	// CLIENTS (SPEECH / TRANSLATE)
	// =========================================================================

	elevenLabs := speech.NewElevenLabsClient(cfg.ElevenLabsAPIKey, cfg.ElevenLabsBaseURL, cfg.RequestTimeout)

	var sttClient ports.STTClient = elevenLabs
	if cfg.STTProvider == "whisper" {
		sttClient = speech.NewWhisperClient(cfg.OpenAIAPIKey)
	}

	speechService := speech.NewService(sttClient, elevenLabs, elevenLabs, speech.SampleLimits{
		MinSeconds: float64(cfg.MinRecordingSeconds),
		MaxSeconds: float64(cfg.MaxRecordingSeconds),
	})

	googleTranslate, err := translate.NewGoogleClient(context.Background())
	if err != nil {
		log.Fatalf("failed to init translate client: %v", err)
	}
	defer googleTranslate.Close()

	translateService := translate.NewService(googleTranslate)

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	voiceRepo := voices.NewRepo(db)
	jobRepo := pipeline.NewRepo(db)

	voiceService := voices.NewService(speechService, storage, voiceRepo)

	defaults := ports.VoiceSettings{
		Stability:  cfg.DefaultStability,
		Similarity: cfg.DefaultSimilarity,
	}

	// =========================================================================
	// TELEGRAM BOT (optional)
	// =========================================================================

	var notifier ports.Notifier = notify.Noop{}
	var tgNotifier *notify.TelegramNotifier
	if cfg.TelegramToken != "" {
		tgNotifier = notify.NewTelegramNotifier(cfg.AdminChatID)
		notifier = tgNotifier
	}

	pipelineService := pipeline.NewService(
		speechService,
		translateService,
		elevenLabs,
		voiceRepo,
		storage,
		jobRepo,
		notifier,
		cfg.TempDir,
	)

	if cfg.TelegramToken != "" {
		botApp, err := telegram.NewBotApp(
			cfg.TelegramToken,
			voiceService,
			pipelineService,
			storage,
			defaults,
			cfg.DefaultTargetLang,
		)
		if err != nil {
			log.Fatalf("failed to init telegram bot: %v", err)
		}

		tgNotifier.SetBot(botApp.Bot())

		go botApp.Run()
	}

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
	}))

	voiceHandler := delivery.NewVoiceHandler(voiceService, zl)
	speechHandler := delivery.NewSpeechHandler(pipelineService, storage, defaults, zl)

	delivery.RegisterRoutes(r, voiceHandler, speechHandler, cfg.APIAuthKey)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "echominds",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
