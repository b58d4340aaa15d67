package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/gordonklaus/portaudio"
)

type RecorderConfig struct {
	SampleRate      int
	Channels        int
	FramesPerBuffer int
}

func DefaultRecorderConfig() RecorderConfig {
	return RecorderConfig{
		SampleRate:      44100,
		Channels:        1,
		FramesPerBuffer: 1024,
	}
}

// Recorder captures microphone input through the default portaudio
// device. Initialize/Terminate bracket the portaudio lifetime.
type Recorder struct {
	config RecorderConfig
	buffer []int16
	stream *portaudio.Stream
}

func NewRecorder(config RecorderConfig) *Recorder {
	return &Recorder{
		config: config,
		buffer: make([]int16, config.FramesPerBuffer*config.Channels),
	}
}

func (r *Recorder) Initialize() error {
	return portaudio.Initialize()
}

func (r *Recorder) Terminate() {
	portaudio.Terminate()
}

func (r *Recorder) Open() error {
	stream, err := portaudio.OpenDefaultStream(
		r.config.Channels,
		0,
		float64(r.config.SampleRate),
		r.config.FramesPerBuffer,
		r.buffer,
	)
	if err != nil {
		return err
	}
	r.stream = stream
	return nil
}

func (r *Recorder) Close() error {
	if r.stream != nil {
		return r.stream.Close()
	}
	return nil
}

// Record captures up to duration of audio and returns it as 16-bit LE
// PCM. Cancelling ctx stops early and returns what was captured.
func (r *Recorder) Record(ctx context.Context, duration time.Duration) ([]byte, error) {
	if r.stream == nil {
		return nil, fmt.Errorf("stream not opened")
	}

	if err := r.stream.Start(); err != nil {
		return nil, err
	}
	defer r.stream.Stop()

	var pcm bytes.Buffer
	deadline := time.Now().Add(duration)

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return pcm.Bytes(), nil
		default:
		}

		if err := r.stream.Read(); err != nil {
			return nil, fmt.Errorf("read audio: %w", err)
		}
		if err := binary.Write(&pcm, binary.LittleEndian, r.buffer); err != nil {
			return nil, err
		}
	}

	return pcm.Bytes(), nil
}
