package audio

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWAV_Header(t *testing.T) {
	pcm := make([]byte, 8)
	data := EncodeWAV(pcm, 44100, 1)

	require.Len(t, data, 44+len(pcm))

	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(data[4:8]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, "fmt ", string(data[12:16]))

	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[20:22]), "audio format should be PCM")
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[22:24]), "channels")
	assert.Equal(t, uint32(44100), binary.LittleEndian.Uint32(data[24:28]), "sample rate")
	assert.Equal(t, uint32(44100*2), binary.LittleEndian.Uint32(data[28:32]), "byte rate")
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(data[32:34]), "block align")
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(data[34:36]), "bits per sample")

	assert.Equal(t, "data", string(data[36:40]))
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(data[40:44]))
}

func TestEncodeWAV_Stereo(t *testing.T) {
	data := EncodeWAV(make([]byte, 16), 16000, 2)

	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(data[22:24]))
	assert.Equal(t, uint32(16000*2*2), binary.LittleEndian.Uint32(data[28:32]))
	assert.Equal(t, uint16(4), binary.LittleEndian.Uint16(data[32:34]))
}

func TestSaveWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	pcm := []byte{1, 2, 3, 4}

	require.NoError(t, SaveWAV(path, pcm, 44100, 1))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, EncodeWAV(pcm, 44100, 1), data)
}

func TestSaveWAV_RejectsEmptyPCM(t *testing.T) {
	err := SaveWAV(filepath.Join(t.TempDir(), "out.wav"), nil, 44100, 1)
	assert.ErrorContains(t, err, "no audio data")
}
