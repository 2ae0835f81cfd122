package anim

import (
	"testing"
	"time"
)

func TestCaretVisible_TogglesOncePerInterval(t *testing.T) {
	const rate = 500 * time.Millisecond

	if !CaretVisible(0, rate) {
		t.Fatalf("CaretVisible(0) = false, want true")
	}
	if CaretVisible(rate, rate) {
		t.Fatalf("CaretVisible(rate) = true, want false")
	}
	if !CaretVisible(2*rate, rate) {
		t.Fatalf("CaretVisible(2*rate) = false, want true")
	}

	// Phase depends only on elapsed time, not on how often it is sampled.
	for _, probe := range []time.Duration{1, 100, 250, 499} {
		if !CaretVisible(probe*time.Millisecond, rate) {
			t.Fatalf("CaretVisible(%v) = false, want true within first phase", probe*time.Millisecond)
		}
	}
}

func TestCaretVisible_ZeroRateStaysSolid(t *testing.T) {
	for _, elapsed := range []time.Duration{0, time.Second, time.Hour} {
		if !CaretVisible(elapsed, 0) {
			t.Fatalf("CaretVisible(%v, 0) = false, want always visible", elapsed)
		}
	}
}

func TestFadeProgress_BoundedAndMonotonic(t *testing.T) {
	cfg := Config{FadeIn: true, FadeDuration: time.Second, FadeTopDown: true}

	const rows = 5
	for row := 0; row < rows; row++ {
		prev := -1.0
		for elapsed := time.Duration(0); elapsed <= 2*time.Second; elapsed += 25 * time.Millisecond {
			p := cfg.FadeProgress(elapsed, row, rows)
			if p < 0 || p > 1 {
				t.Fatalf("FadeProgress(%v, row %d) = %v, want within [0, 1]", elapsed, row, p)
			}
			if p < prev {
				t.Fatalf("FadeProgress(%v, row %d) = %v, decreased from %v", elapsed, row, p, prev)
			}
			prev = p
		}
		if prev != 1 {
			t.Fatalf("row %d progress = %v after full duration, want 1", row, prev)
		}
	}
}

func TestFadeProgress_RowsStagger(t *testing.T) {
	cfg := Config{FadeIn: true, FadeDuration: time.Second, FadeTopDown: true}

	// Midway through, earlier rows must be at least as far along.
	at := 400 * time.Millisecond
	top := cfg.FadeProgress(at, 0, 5)
	bottom := cfg.FadeProgress(at, 4, 5)
	if top <= bottom {
		t.Fatalf("top-down fade: top %v <= bottom %v at %v", top, bottom, at)
	}

	cfg.FadeTopDown = false
	top = cfg.FadeProgress(at, 0, 5)
	bottom = cfg.FadeProgress(at, 4, 5)
	if bottom <= top {
		t.Fatalf("bottom-up fade: bottom %v <= top %v at %v", bottom, top, at)
	}
}

func TestFadeProgress_DisabledIsOpaque(t *testing.T) {
	var cfg Config
	if p := cfg.FadeProgress(0, 0, 5); p != 1 {
		t.Fatalf("FadeProgress with fade disabled = %v, want 1", p)
	}
}

func TestRainbowHue_RangeAndAdvance(t *testing.T) {
	cfg := Config{Rainbow: true, RainbowSpeed: 1}

	a := cfg.RainbowHue(100 * time.Millisecond)
	b := cfg.RainbowHue(200 * time.Millisecond)
	for _, hue := range []float64{a, b} {
		if hue < 0 || hue >= 360 {
			t.Fatalf("RainbowHue = %v, want within [0, 360)", hue)
		}
	}
	if a == b {
		t.Fatalf("hue did not advance between samples: %v", a)
	}

	// One full base revolution lands back where it started.
	c := cfg.RainbowHue(2 * time.Second)
	d := cfg.RainbowHue(4 * time.Second)
	if c != d {
		t.Fatalf("hue not periodic: %v vs %v", c, d)
	}
}

func TestTickInterval_ShortestActivePeriodWins(t *testing.T) {
	blink := Config{BlinkRate: 500 * time.Millisecond}
	if got := blink.TickInterval(time.Hour); got != 500*time.Millisecond {
		t.Fatalf("TickInterval blink-only = %v, want blink rate", got)
	}

	rainbow := Config{BlinkRate: 500 * time.Millisecond, Rainbow: true}
	if got := rainbow.TickInterval(time.Hour); got != frameInterval {
		t.Fatalf("TickInterval with rainbow = %v, want frame interval", got)
	}

	fading := Config{FadeIn: true, FadeDuration: time.Second, BlinkRate: 500 * time.Millisecond}
	if got := fading.TickInterval(100 * time.Millisecond); got != frameInterval {
		t.Fatalf("TickInterval mid-fade = %v, want frame interval", got)
	}
	if got := fading.TickInterval(2 * time.Second); got != 500*time.Millisecond {
		t.Fatalf("TickInterval after fade = %v, want blink rate", got)
	}

	// A blink faster than the frame rate wins even while a continuous
	// effect is running.
	fastBlink := Config{BlinkRate: 10 * time.Millisecond, Rainbow: true}
	if got := fastBlink.TickInterval(time.Hour); got != 10*time.Millisecond {
		t.Fatalf("TickInterval fast blink + rainbow = %v, want blink rate", got)
	}

	var quiet Config
	if got := quiet.TickInterval(time.Hour); got != idleInterval {
		t.Fatalf("TickInterval with no animation = %v, want idle interval", got)
	}
}
