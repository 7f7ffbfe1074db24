package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/younwookim/clinicquest/internal/application/system"
)

// ErrVersion is returned for replays written by another format version
var ErrVersion = errors.New("unsupported replay version")

// LoadReplay loads a replay file written by Recorder.Save
func LoadReplay(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads a zstd-compressed JSON lines replay stream
func Decode(r io.Reader) (*Data, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay stream: %w", err)
	}
	defer zr.Close()

	dec := json.NewDecoder(zr)
	var data Data
	if err := dec.Decode(&data.Header); err != nil {
		return nil, fmt.Errorf("failed to decode replay header: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, data.Version)
	}

	for {
		var fi FrameInput
		err := dec.Decode(&fi)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode frame %d: %w", len(data.Frames), err)
		}
		data.Frames = append(data.Frames, fi)
	}

	return &data, nil
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  Data
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data Data) *Replayer {
	return &Replayer{data: data}
}

// Next returns the input for the current frame and advances.
// Frames naming unknown actions replay as empty input.
func (r *Replayer) Next() (system.Frame, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.Frame{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	f, err := fi.Frame()
	if err != nil {
		return system.Frame{}, true
	}
	return f, true
}

// Poll returns the next frame, or an idle frame once the replay ran out
func (r *Replayer) Poll() system.Frame {
	f, _ := r.Next()
	return f
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Header returns the replay header
func (r *Replayer) Header() Header {
	return r.data.Header
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
