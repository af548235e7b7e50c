// Package profile holds the fixed constants beam ships with: the fade curve,
// the spotlight size, the frame rate and the overlay color.
package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"time"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed beam.yaml
var beamYAML []byte

var (
	ErrEmptyCurve   = errors.New("profile: curve is empty")
	ErrUnknownColor = errors.New("profile: unknown color name")
)

type Profile struct {
	Name      string        `yaml:"name"`
	Class     string        `yaml:"class"`
	Spotlight SpotlightSpec `yaml:"spotlight"`
	Fade      FadeSpec      `yaml:"fade"`
	Overlay   OverlaySpec   `yaml:"overlay"`
}

type SpotlightSpec struct {
	Diameter int `yaml:"diameter"`
}

type FadeSpec struct {
	FPS   int   `yaml:"fps"`
	Curve []int `yaml:"curve"`
}

type OverlaySpec struct {
	Color string `yaml:"color"`
}

// Load decodes the embedded profile. It is called once at startup; the
// result is never reloaded.
func Load() (*Profile, error) {
	return Decode(beamYAML)
}

// Decode parses and validates a profile document.
func Decode(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile: unmarshal: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.New("profile: name is required")
	}
	if p.Spotlight.Diameter <= 0 {
		return fmt.Errorf("profile: spotlight diameter must be positive, got %d", p.Spotlight.Diameter)
	}
	if p.Fade.FPS <= 0 {
		return fmt.Errorf("profile: fade fps must be positive, got %d", p.Fade.FPS)
	}
	if len(p.Fade.Curve) == 0 {
		return ErrEmptyCurve
	}
	for i, v := range p.Fade.Curve {
		if v < 0 || v > 0xFF {
			return fmt.Errorf("profile: curve[%d] = %d is not a byte", i, v)
		}
	}
	if _, err := p.Color(); err != nil {
		return err
	}
	return nil
}

// CurveBytes returns the fade curve as alpha bytes.
func (p *Profile) CurveBytes() []uint8 {
	out := make([]uint8, len(p.Fade.Curve))
	for i, v := range p.Fade.Curve {
		out[i] = uint8(v)
	}
	return out
}

// FrameInterval is the sleep used between animation frames.
func (p *Profile) FrameInterval() time.Duration {
	return time.Second / time.Duration(p.Fade.FPS)
}

// Color resolves the overlay color name against the SVG color keywords.
func (p *Profile) Color() (color.RGBA, error) {
	c, ok := colornames.Map[p.Overlay.Color]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, p.Overlay.Color)
	}
	return c, nil
}

// WindowClass is the WM_CLASS value, falling back to the profile name.
func (p *Profile) WindowClass() string {
	if p.Class != "" {
		return p.Class
	}
	return p.Name
}
