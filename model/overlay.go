package model

import "math"

// -- viewport overlays

// OverlayAnimation tints the whole viewport, fading in to MaxOpacity and back out.
type OverlayAnimation struct {
	Red, Green, Blue            uint8
	Opacity                     float64
	MaxOpacity                  float64
	OpacityDelta                float64
	FrameLength                 float64
	TimeRemainingUntilNextFrame float64
}

const (
	overlayTotalTimeMs = 75.0
	overlayTotalFrames = 10.0
	overlayMinOpacity  = 0.2
)

func overlayWithColor(r, g, b uint8, maxOpacity float64) OverlayAnimation {
	delta := math.Max(maxOpacity, overlayMinOpacity) / (overlayTotalFrames / 2.0)
	frameLength := overlayTotalTimeMs / overlayTotalFrames
	return OverlayAnimation{
		Red:                         r,
		Green:                       g,
		Blue:                        b,
		Opacity:                     delta,
		MaxOpacity:                  maxOpacity,
		OpacityDelta:                delta,
		FrameLength:                 frameLength,
		TimeRemainingUntilNextFrame: frameLength,
	}
}

func BloodOverlay(maxOpacity float64) OverlayAnimation {
	return overlayWithColor(0xFF, 0x00, 0x00, maxOpacity)
}

func PickupOverlay() OverlayAnimation {
	return overlayWithColor(0xFF, 0xD7, 0x00, 0.4)
}

// -- pixel dissolver

type DissolverState int

const (
	DissolveForwards DissolverState = iota
	DissolveBackwards
	DissolveTransitioning
	DissolveStopped
)

// PixelDissolver is the level transition state. It is carried on the game state
// but nothing advances it yet.
type PixelDissolver struct {
	RemainingPixels    []MapPosition
	DrawnPixels        []MapPosition
	PixelSize          float64
	PauseTimeRemaining float64
	State              DissolverState
}

func (d PixelDissolver) TotalPixels() int {
	return len(d.RemainingPixels) + len(d.DrawnPixels)
}

func (d PixelDissolver) IsComplete() bool {
	return d.State == DissolveBackwards && len(d.DrawnPixels) == 0
}
