package delivery

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"

	"github.com/echominds/echominds/internal/ports"
	"github.com/echominds/echominds/internal/translate"
)

type SpeechHandler struct {
	pipeline ports.PipelineService
	storage  ports.ObjectStorage
	defaults ports.VoiceSettings
	log      *logger.ZapLogger
}

func NewSpeechHandler(pipeline ports.PipelineService, storage ports.ObjectStorage, defaults ports.VoiceSettings, log *logger.ZapLogger) *SpeechHandler {
	return &SpeechHandler{
		pipeline: pipeline,
		storage:  storage,
		defaults: defaults,
		log:      log,
	}
}

// Translate runs the whole flow for one uploaded recording and returns
// the transcript, the translation and where the synthesized audio ended
// up.
func (h *SpeechHandler) Translate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart: "+err.Error(), http.StatusBadRequest)
		return
	}

	voiceID := r.FormValue("voice_id")
	targetLang := r.FormValue("target_lang")
	if voiceID == "" || targetLang == "" {
		http.Error(w, "missing voice_id or target_lang", http.StatusBadRequest)
		return
	}

	audioPath, cleanup, err := saveUpload(r, "file")
	if err != nil {
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer cleanup()

	settings := h.defaults
	if v := r.FormValue("stability"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			settings.Stability = f
		}
	}
	if v := r.FormValue("similarity"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			settings.Similarity = f
		}
	}

	job, err := h.pipeline.Process(r.Context(), ports.PipelineRequest{
		AudioPath:  audioPath,
		VoiceID:    voiceID,
		TargetLang: targetLang,
		SourceLang: r.FormValue("source_lang"),
		Settings:   settings,
	})
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "pipeline failed", Error: err})
		http.Error(w, "failed to translate speech: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(job)
}

func (h *SpeechHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	jobs, err := h.pipeline.History(r.Context(), limit)
	if err != nil {
		http.Error(w, "failed to load history: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if jobs == nil {
		jobs = []ports.SpeechJob{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(jobs)
}

func (h *SpeechHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.pipeline.ClearHistory(r.Context()); err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "clear history failed", Error: err})
		http.Error(w, "failed to clear history: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetOutput streams a stored synthesis result back to the caller.
func (h *SpeechHandler) GetOutput(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		http.Error(w, "missing output key", http.StatusBadRequest)
		return
	}

	obj, err := h.storage.GetObject(r.Context(), "outputs/"+key)
	if err != nil {
		http.Error(w, "output not found: "+err.Error(), http.StatusNotFound)
		return
	}
	defer obj.Close()

	w.Header().Set("Content-Type", "audio/mpeg")
	if _, err := io.Copy(w, obj); err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "stream output failed", Error: err})
	}
}

func (h *SpeechHandler) Languages(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(translate.SupportedLanguages)
}
