// Package anim turns elapsed wall-clock time into animation phases for
// the caret blink, the results fade-in, and the rainbow border. Every
// function here is pure: the same (elapsed, config) always yields the
// same phase, so visual timing is independent of render throughput.
package anim

import (
	"math"
	"time"
)

// degreesPerSecond is the base rainbow rotation rate before the
// configured speed multiplier: one full revolution every two seconds.
const degreesPerSecond = 180.0

const (
	// frameInterval paces continuous animations (fade, rainbow).
	frameInterval = 33 * time.Millisecond
	// idleInterval keeps the loop live when nothing animates.
	idleInterval = 100 * time.Millisecond
)

// Config holds the animation knobs the launcher reads from its
// configuration; zero values disable the matching effect.
type Config struct {
	BlinkRate    time.Duration // caret phase length, 0 keeps the caret solid
	FadeIn       bool
	FadeDuration time.Duration
	FadeTopDown  bool // stagger rows top to bottom instead of bottom up
	Rainbow      bool
	RainbowSpeed float64 // scalar multiple of the base rotation rate
}

// CaretVisible reports whether the caret is shown after elapsed time. The
// caret is visible on even phases and hidden on odd ones, so it toggles
// exactly once per rate interval no matter how often frames render.
func CaretVisible(elapsed, rate time.Duration) bool {
	if rate <= 0 {
		return true
	}
	return (elapsed/rate)%2 == 0
}

// FadeProgress returns the opacity of row (0-based, rows visible in
// total) at elapsed time since the fade was triggered. Rows ramp from 0
// to 1 in rank order with a per-row stagger, each clamping at 1 once its
// window passes. Progress is monotonic in elapsed.
func (c Config) FadeProgress(elapsed time.Duration, row, rows int) float64 {
	if !c.FadeIn || c.FadeDuration <= 0 {
		return 1
	}
	if row < 0 || rows <= 0 {
		return 1
	}

	pos := row
	if !c.FadeTopDown {
		pos = rows - 1 - row
	}

	// Half the duration is spread across row delays, the other half is
	// each row's own ramp, so the last row still finishes on time.
	total := c.FadeDuration.Seconds()
	ramp := total / 2
	delay := 0.0
	if rows > 1 {
		delay = (total / 2) * float64(pos) / float64(rows-1)
	}

	p := (elapsed.Seconds() - delay) / ramp
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// RainbowHue returns the border hue in degrees [0, 360) at elapsed time.
func (c Config) RainbowHue(elapsed time.Duration) float64 {
	speed := c.RainbowSpeed
	if speed <= 0 {
		speed = 1
	}
	hue := math.Mod(elapsed.Seconds()*degreesPerSecond*speed, 360)
	if hue < 0 {
		hue += 360
	}
	return hue
}

// TickInterval returns how long the loop may block for input before it
// must wake to advance animation: the shortest period among the effects
// currently running (frame interval for fade and rainbow, blink rate
// for the caret), or a lazy idle interval when nothing animates.
// sinceFade is the time since the fade was last triggered, so a
// finished fade stops forcing full-rate frames.
func (c Config) TickInterval(sinceFade time.Duration) time.Duration {
	var interval time.Duration
	if c.Rainbow || (c.FadeIn && sinceFade < c.FadeDuration) {
		interval = frameInterval
	}
	if c.BlinkRate > 0 && (interval == 0 || c.BlinkRate < interval) {
		interval = c.BlinkRate
	}
	if interval == 0 {
		return idleInterval
	}
	return interval
}
