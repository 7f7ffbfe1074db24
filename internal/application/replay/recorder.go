package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/younwookim/clinicquest/internal/application/system"
)

// ErrEmpty is returned when saving a recording without frames
var ErrEmpty = errors.New("no frames to save")

// Recorder collects per-tick input for replay
type Recorder struct {
	header    Header
	frames    []FrameInput
	recording bool
}

// NewRecorder starts a recording of the given world. saveSlot is the raw
// save slot at the start of the recording, or nil when there is none.
func NewRecorder(world string, saveSlot []byte) *Recorder {
	return &Recorder{
		header: Header{
			Version:   Version,
			SessionID: uuid.NewString(),
			World:     world,
			StartTime: time.Now().Format(time.RFC3339),
			SaveSlot:  saveSlot,
		},
		frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60 TPS
		recording: true,
	}
}

// Record appends one tick's input
func (r *Recorder) Record(f system.Frame) {
	if !r.recording {
		return
	}
	r.frames = append(r.frames, EncodeFrame(len(r.frames), f))
}

// Stop stops recording; recorded frames are kept
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.frames)
}

// SessionID returns the id stamped into the header
func (r *Recorder) SessionID() string {
	return r.header.SessionID
}

// Data returns the recording as decoded replay data
func (r *Recorder) Data() Data {
	return Data{Header: r.header, Frames: r.frames}
}

// Save writes the header and frames as zstd-compressed JSON lines
func (r *Recorder) Save(filename string) error {
	if len(r.frames) == 0 {
		return ErrEmpty
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zw, err := zstd.NewWriter(file, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return fmt.Errorf("failed to create encoder: %w", err)
	}
	bw := bufio.NewWriter(zw)
	enc := json.NewEncoder(bw)

	if err := enc.Encode(r.header); err != nil {
		_ = zw.Close()
		return fmt.Errorf("failed to encode header: %w", err)
	}
	for _, fi := range r.frames {
		if err := enc.Encode(fi); err != nil {
			_ = zw.Close()
			return fmt.Errorf("failed to encode frame %d: %w", fi.F, err)
		}
	}

	if err := bw.Flush(); err != nil {
		_ = zw.Close()
		return fmt.Errorf("failed to flush replay: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish replay: %w", err)
	}
	return file.Close()
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.jsonl.zst", time.Now().Format("20060102_150405"))
}
