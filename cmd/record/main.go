// Command record captures microphone audio, sends it to an echominds
// server and plays the translated result.
//
// Clone a voice:
//
//	record -clone -name myvoice -duration 20
//
// Translate a recording with a cloned voice:
//
//	record -voice <voice_id> -lang es -duration 15 -play
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/echominds/echominds/internal/audio"
	"github.com/echominds/echominds/internal/config"
	"github.com/echominds/echominds/internal/ports"
)

func main() {
	var (
		server   = flag.String("server", "http://localhost:8080", "echominds server address")
		apiKey   = flag.String("api-key", os.Getenv("API_AUTH_KEY"), "API key for the server")
		clone    = flag.Bool("clone", false, "record a sample and clone a voice")
		name     = flag.String("name", "MyClonedVoice", "voice name for cloning")
		voiceID  = flag.String("voice", "", "cloned voice id for translation")
		lang     = flag.String("lang", "en", "target language code")
		duration = flag.Int("duration", 15, "recording duration in seconds")
		play     = flag.Bool("play", false, "play the translated audio when done")
		keep     = flag.String("keep", "", "also save the recording to this path")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if !*clone && *voiceID == "" {
		log.Fatal("either -clone or -voice is required")
	}
	if *duration < cfg.MinRecordingSeconds || *duration > cfg.MaxRecordingSeconds {
		log.Fatalf("duration must be between %d and %d seconds", cfg.MinRecordingSeconds, cfg.MaxRecordingSeconds)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	wavPath, err := record(ctx, cfg, *duration)
	if err != nil {
		log.Fatalf("recording failed: %v", err)
	}
	defer os.Remove(wavPath)

	if *keep != "" {
		if err := copyFile(wavPath, *keep); err != nil {
			log.Printf("could not keep recording: %v", err)
		}
	}

	client := &apiClient{server: *server, apiKey: *apiKey}

	if *clone {
		voice, err := client.cloneVoice(ctx, *name, wavPath)
		if err != nil {
			log.Fatalf("clone failed: %v", err)
		}
		fmt.Printf("voice cloned: %s (id %s)\n", voice.Name, voice.VoiceID)
		return
	}

	job, err := client.translateSpeech(ctx, wavPath, *voiceID, *lang)
	if err != nil {
		log.Fatalf("translation failed: %v", err)
	}

	fmt.Printf("transcript:  %s\n", job.Transcript)
	fmt.Printf("translation: %s\n", job.Translation)

	outPath := filepath.Join(os.TempDir(), filepath.Base(job.OutputKey))
	if err := client.download(ctx, job.OutputKey, outPath); err != nil {
		log.Fatalf("download failed: %v", err)
	}
	fmt.Printf("saved: %s\n", outPath)

	if *play {
		if err := audio.PlayMP3(ctx, outPath); err != nil {
			log.Fatalf("playback failed: %v", err)
		}
	}
}

func record(ctx context.Context, cfg *config.Config, seconds int) (string, error) {
	rec := audio.NewRecorder(audio.RecorderConfig{
		SampleRate:      cfg.SampleRate,
		Channels:        cfg.Channels,
		FramesPerBuffer: 1024,
	})

	if err := rec.Initialize(); err != nil {
		return "", err
	}
	defer rec.Terminate()

	if err := rec.Open(); err != nil {
		return "", err
	}
	defer rec.Close()

	fmt.Printf("recording for %d seconds (Ctrl-C to stop early)...\n", seconds)
	pcm, err := rec.Record(ctx, time.Duration(seconds)*time.Second)
	if err != nil {
		return "", err
	}

	path := filepath.Join(cfg.TempDir, fmt.Sprintf("recording_%s.wav", time.Now().Format("20060102_150405")))
	if err := audio.SaveWAV(path, pcm, cfg.SampleRate, cfg.Channels); err != nil {
		return "", err
	}

	fmt.Printf("recorded: %s\n", path)
	return path, nil
}

type apiClient struct {
	server string
	apiKey string
}

func (c *apiClient) cloneVoice(ctx context.Context, name, wavPath string) (ports.ClonedVoice, error) {
	var voice ports.ClonedVoice
	err := c.postMultipart(ctx, "/voices", wavPath, map[string]string{"name": name}, &voice)
	return voice, err
}

func (c *apiClient) translateSpeech(ctx context.Context, wavPath, voiceID, lang string) (ports.SpeechJob, error) {
	var job ports.SpeechJob
	err := c.postMultipart(ctx, "/speech/translate", wavPath, map[string]string{
		"voice_id":    voiceID,
		"target_lang": lang,
	}, &job)
	return job, err
}

func (c *apiClient) postMultipart(ctx context.Context, path, filePath string, fields map[string]string, out any) error {
	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	part, err := w.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.server+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("server error: %s", raw)
	}

	return json.Unmarshal(raw, out)
}

func (c *apiClient) download(ctx context.Context, outputKey, destPath string) error {
	url := c.server + "/outputs/" + filepath.Base(outputKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error: %s", raw)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
