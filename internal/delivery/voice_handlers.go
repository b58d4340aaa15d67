package delivery

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"

	"github.com/echominds/echominds/internal/ports"
)

const maxUploadBytes = 25 << 20

type VoiceHandler struct {
	voices ports.VoiceService
	log    *logger.ZapLogger
}

func NewVoiceHandler(voices ports.VoiceService, log *logger.ZapLogger) *VoiceHandler {
	return &VoiceHandler{
		voices: voices,
		log:    log,
	}
}

// Clone accepts a multipart sample plus a voice name and returns the
// registered voice.
func (h *VoiceHandler) Clone(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart: "+err.Error(), http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}

	samplePath, cleanup, err := saveUpload(r, "file")
	if err != nil {
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer cleanup()

	voice, err := h.voices.Clone(r.Context(), name, samplePath)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "clone failed", Error: err})
		http.Error(w, "failed to clone voice: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(voice)
}

func (h *VoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	voices, err := h.voices.List(r.Context())
	if err != nil {
		http.Error(w, "failed to list voices: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if voices == nil {
		voices = []ports.ClonedVoice{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(voices)
}

func (h *VoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	voiceID := chi.URLParam(r, "voice_id")
	if voiceID == "" {
		http.Error(w, "missing voice_id", http.StatusBadRequest)
		return
	}

	if err := h.voices.Delete(r.Context(), voiceID); err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "delete voice failed", Error: err})
		http.Error(w, "failed to delete voice: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// saveUpload copies the uploaded form file into a temp file so the
// speech clients can work with a path. cleanup removes it.
func saveUpload(r *http.Request, field string) (path string, cleanup func(), err error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", nil, err
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	tmp, err := os.CreateTemp("", "echominds_upload_*"+ext)
	if err != nil {
		return "", nil, err
	}

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, err
	}
	tmp.Close()

	return tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}
