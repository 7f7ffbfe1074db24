package replay

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/clinicquest/internal/application/system"
	"github.com/younwookim/clinicquest/internal/infrastructure/save"
)

// Version is the replay file format version
const Version = 1

// Header is the first line of a replay file
type Header struct {
	Version   int    `json:"version"`
	SessionID string `json:"session"`
	World     string `json:"world"`
	StartTime string `json:"startTime"`
	// SaveSlot is the save slot as it was when recording started, so menus
	// offer the same entries and Load restores the same game on replay
	SaveSlot []byte `json:"saveSlot,omitempty"`
}

// FrameInput is one recorded tick (short keys keep the stream small)
type FrameInput struct {
	F  int      `json:"f"`
	H  []string `json:"h,omitempty"`
	MX int      `json:"mx,omitempty"`
	MY int      `json:"my,omitempty"`
	MD bool     `json:"md,omitempty"`
}

// Data is a decoded replay file
type Data struct {
	Header
	Frames []FrameInput
}

// Saves returns a save manager over an in-memory slot seeded from the header
func (d *Data) Saves(logger *zap.Logger) (*save.Manager, error) {
	m := save.NewManager(save.NewMemStore(), logger)
	if len(d.SaveSlot) == 0 {
		return m, nil
	}
	if err := m.Seed(d.SaveSlot); err != nil {
		return nil, fmt.Errorf("replay save slot: %w", err)
	}
	return m, nil
}

// EncodeFrame converts a physical frame into its recorded form
func EncodeFrame(n int, f system.Frame) FrameInput {
	fi := FrameInput{
		F:  n,
		MX: f.PointerX,
		MY: f.PointerY,
		MD: f.PointerDown,
	}
	if len(f.Held) > 0 {
		fi.H = make([]string, len(f.Held))
		for i, a := range f.Held {
			fi.H[i] = a.String()
		}
	}
	return fi
}

// Frame converts the recorded tick back into a physical frame
func (fi FrameInput) Frame() (system.Frame, error) {
	f := system.Frame{
		PointerX:    fi.MX,
		PointerY:    fi.MY,
		PointerDown: fi.MD,
	}
	for _, name := range fi.H {
		a, err := system.ParseAction(name)
		if err != nil {
			return system.Frame{}, fmt.Errorf("frame %d: %w", fi.F, err)
		}
		f.Held = append(f.Held, a)
	}
	return f, nil
}
