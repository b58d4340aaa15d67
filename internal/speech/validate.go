package speech

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Limits for a clone sample. Shorter samples produce unusable clones,
// longer ones are rejected by the service anyway.
type SampleLimits struct {
	MinSeconds float64
	MaxSeconds float64
}

// AudioDuration shells out to ffprobe; it is the only thing we need
// ffmpeg for, so no binding library.
func AudioDuration(path string) (float64, error) {
	out, err := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	return strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
}

// ValidateSample checks that path exists, is non-empty and its duration
// falls inside limits.
func ValidateSample(path string, limits SampleLimits) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("audio file: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("audio file is empty: %s", path)
	}

	dur, err := AudioDuration(path)
	if err != nil {
		return err
	}

	if dur < limits.MinSeconds {
		return fmt.Errorf("audio too short (%.1fs), minimum %.0fs", dur, limits.MinSeconds)
	}
	if limits.MaxSeconds > 0 && dur > limits.MaxSeconds {
		return fmt.Errorf("audio too long (%.1fs), maximum %.0fs", dur, limits.MaxSeconds)
	}

	return nil
}
