package ports

import "context"

// VoiceSettings tune how closely the synthesized speech follows the
// cloned sample. Both are in the 0..1 range the API expects.
type VoiceSettings struct {
	Stability  float64 `json:"stability"`
	Similarity float64 `json:"similarity"`
}

type RemoteVoice struct {
	VoiceID  string `json:"voice_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// STTClient turns a local audio file into text.
type STTClient interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
}

// TTSClient synthesizes text with a given voice and writes the result
// (MP3) to outPath.
type TTSClient interface {
	Synthesize(ctx context.Context, voiceID, text string, settings VoiceSettings, outPath string) error
}

// CloneClient manages cloned voices at the remote service.
type CloneClient interface {
	Clone(ctx context.Context, name, description, samplePath string) (voiceID string, err error)
	ListVoices(ctx context.Context) ([]RemoteVoice, error)
	DeleteVoice(ctx context.Context, voiceID string) error
}
