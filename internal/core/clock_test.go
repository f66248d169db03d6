package core

import (
	"testing"
	"time"
)

func TestFrameClock(t *testing.T) {
	c := NewFrameClock(50)

	if c.Now() != 0 {
		t.Errorf("new clock should start at 0, got %v", c.Now())
	}
	if c.Delta() != 20*time.Millisecond {
		t.Errorf("Delta() = %v, expected 20ms", c.Delta())
	}

	for i := 0; i < 50; i++ {
		c.Tick()
	}
	if c.Now() != time.Second {
		t.Errorf("after 50 ticks at 50Hz Now() = %v, expected 1s", c.Now())
	}
}

func TestFrameClockDefaultRate(t *testing.T) {
	c := NewFrameClock(0)
	if c.Delta() != time.Second/60 {
		t.Errorf("zero tick rate should fall back to 60Hz, got delta %v", c.Delta())
	}
}

func TestInputOf(t *testing.T) {
	f := InputOf(ActionLeft, ActionRight)

	if !f.Has(ActionLeft) || !f.Has(ActionRight) {
		t.Error("InputOf should set every given action")
	}
	if f.Has(ActionRestart) {
		t.Error("InputOf should not set other actions")
	}

	clone := f.Clone()
	f.Clear()
	if !clone.Has(ActionLeft) {
		t.Error("Clone should not share storage with the original")
	}
	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
}

func TestFrameClockWholeSeconds(t *testing.T) {
	c := NewFrameClock(60)
	for i := 0; i < 30*60; i++ {
		c.Tick()
	}
	if c.Now() != 30*time.Second {
		t.Errorf("after 1800 ticks at 60Hz Now() = %v, expected 30s", c.Now())
	}
}
