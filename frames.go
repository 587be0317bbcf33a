package dotart

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Effect names an animation built from a single grid.
type Effect int

const (
	EffectBlink Effect = iota
	EffectBounce
	EffectRotate
	EffectRainbow
	EffectFade
)

var effectNames = [...]string{"blink", "bounce", "rotate", "rainbow", "fade"}

func (e Effect) String() string {
	if e < 0 || int(e) >= len(effectNames) {
		return fmt.Sprintf("Effect(%d)", int(e))
	}
	return effectNames[e]
}

// FrameCount returns how many frames the effect produces, or 0 if unknown.
func (e Effect) FrameCount() int {
	switch e {
	case EffectBlink, EffectRotate:
		return 8
	case EffectBounce, EffectRainbow, EffectFade:
		return 12
	}
	return 0
}

// ParseEffect parses an effect name as returned by String.
func ParseEffect(s string) (Effect, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range effectNames {
		if name == s {
			return Effect(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEffect, s)
}

// Frame is one animation step. Display delay is chosen by the encoder.
type Frame struct {
	Grid DotGrid
}

// FrameSequence is an ordered, non-empty list of frames of equal size.
type FrameSequence []Frame

// Synthesize builds the frames of effect from g. bg is the color faded
// against by EffectFade and is ignored by the other effects.
func Synthesize(g DotGrid, effect Effect, bg RGB) (FrameSequence, error) {
	n := effect.FrameCount()
	if n == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEffect, int(effect))
	}
	frames := make(FrameSequence, n)
	for i := range n {
		var fg DotGrid
		switch effect {
		case EffectBlink:
			fg = blinkFrame(g, i)
		case EffectBounce:
			fg = bounceFrame(g, i, n)
		case EffectRotate:
			fg = rotateFrame(g, i)
		case EffectRainbow:
			fg = hueShift(g, float64(i)/float64(n)*360)
		case EffectFade:
			fg = fadeFrame(g, i, bg)
		}
		frames[i] = Frame{Grid: fg}
	}
	Logger().Debug("dotart: frames synthesized", "effect", effect.String(), "frames", n, "size", g.Size)
	return frames, nil
}

func blinkFrame(g DotGrid, i int) DotGrid {
	if i%2 == 1 {
		return NewDotGrid(g.Size)
	}
	return g.Clone()
}

func bounceFrame(g DotGrid, i, n int) DotGrid {
	offset := math.Round(math.Sin(2*math.Pi*float64(i)/float64(n)) * 0.15 * float64(g.Size))
	return g.ShiftRows(int(offset))
}

// rotateFrame alternates hold and quarter-turn frames: frame i shows
// (i+1)/2 clockwise turns, so the eighth frame closes the full circle.
func rotateFrame(g DotGrid, i int) DotGrid {
	out := g.Clone()
	for range ((i + 1) / 2) % 4 {
		out = out.Rotate90()
	}
	return out
}

func hueShift(g DotGrid, degrees float64) DotGrid {
	out := g.Clone()
	for i, c := range out.Cells {
		if !c.Filled {
			continue
		}
		h, s, v := c.Color.Colorful().Hsv()
		out.Cells[i].Color = FromColorful(colorful.Hsv(math.Mod(h+degrees, 360), s, v))
	}
	return out
}

// fadeOpacity is a triangle over 12 frames: 0 at frames 0 and 11, 1 at 5 and 6.
func fadeOpacity(i int) float64 {
	if i <= 5 {
		return float64(i) / 5
	}
	return float64(11-i) / 5
}

func fadeFrame(g DotGrid, i int, bg RGB) DotGrid {
	a := fadeOpacity(i)
	out := g.Clone()
	for j, c := range out.Cells {
		if c.Filled {
			out.Cells[j].Color = c.Color.Blend(bg, a)
		}
	}
	return out
}
