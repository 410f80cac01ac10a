package ui

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/lichnak/rg3d/pkg/errors"
)

// Options tunes interface behavior that hosts commonly want to adjust
// without recompiling.
type Options struct {
	// VisualDebug draws the picked node's bounds each frame.
	VisualDebug bool `toml:"visual_debug"`
	// WheelScrollScale multiplies the raw wheel line delta before it is
	// routed as a MouseWheel event.
	WheelScrollScale float32 `toml:"wheel_scroll_scale"`
	// ClipInflate expands each node's clip rect to avoid float-edge
	// exclusion of boundary pixels.
	ClipInflate float32 `toml:"clip_inflate"`
}

// DefaultOptions returns the built-in tuning values.
func DefaultOptions() Options {
	return Options{
		WheelScrollScale: 1,
		ClipInflate:      0.9,
	}
}

// LoadOptions reads options from a TOML file, falling back to defaults
// for missing keys. A missing file is not an error and yields the
// defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, errors.New("ui.LoadOptions", errors.KindConfig,
			fmt.Errorf("failed to read %s: %w", path, err))
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return DefaultOptions(), errors.New("ui.LoadOptions", errors.KindConfig,
			fmt.Errorf("failed to parse %s: %w", path, err))
	}
	return opts, nil
}
