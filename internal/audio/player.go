package audio

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/gordonklaus/portaudio"
	mp3 "github.com/hajimehoshi/go-mp3"
)

const playbackFrames = 1024

// PlayMP3 decodes an MP3 file and plays it on the default output
// device. go-mp3 always decodes to 16-bit stereo.
func PlayMP3(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open mp3: %w", err)
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return fmt.Errorf("decode mp3: %w", err)
	}

	if err := portaudio.Initialize(); err != nil {
		return err
	}
	defer portaudio.Terminate()

	buffer := make([]int16, playbackFrames*2)
	stream, err := portaudio.OpenDefaultStream(
		0,
		2,
		float64(decoder.SampleRate()),
		playbackFrames,
		buffer,
	)
	if err != nil {
		return err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return err
	}
	defer stream.Stop()

	raw := make([]byte, len(buffer)*2)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := io.ReadFull(decoder, raw)
		if err == io.EOF {
			return nil
		}
		if err != nil && err != io.ErrUnexpectedEOF {
			return fmt.Errorf("read samples: %w", err)
		}

		// Zero-pad the tail so the last write has a full buffer.
		for i := n; i < len(raw); i++ {
			raw[i] = 0
		}
		for i := range buffer {
			buffer[i] = int16(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
		}

		if err := stream.Write(); err != nil {
			return fmt.Errorf("write audio: %w", err)
		}

		if err == io.ErrUnexpectedEOF {
			return nil
		}
	}
}
