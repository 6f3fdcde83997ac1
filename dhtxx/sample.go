// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dhtxx

import (
	"fmt"
	"runtime/debug"
	"time"

	"periph.io/x/conn/v3/gpio"
)

const (
	// maxLevelWait bounds every timed wait so a disconnected or stuck line
	// fails the read instead of hanging it.
	maxLevelWait = time.Millisecond

	// levelPoll is the polling interval for waits where tens of
	// microseconds of granularity error are acceptable.
	levelPoll = 10 * time.Microsecond

	// ackPulse is the nominal width of each half of the sensor's
	// low-then-high acknowledgment.
	ackPulse = 80 * time.Microsecond

	// confirmSlack is how much shorter than nominal an acknowledgment
	// pulse may measure before it is rejected. 80µs minus 50µs leaves the
	// same 30µs floor the protocol needs to tell an acknowledgment from
	// line noise.
	confirmSlack = 50 * time.Microsecond
)

// Seams for the tests, which substitute a fake clock.
var (
	sleep = time.Sleep
	now   = time.Now
)

// levelTime measures how long the line stays at level, polling every
// interval (or as fast as possible when interval is 0). It returns a
// negative duration if the line is still at level after maxLevelWait.
//
// The measurement overshoots by up to one interval plus one pin read, so
// callers comparing against a threshold need the protocol's 2:1 pulse-width
// margin to absorb the error.
func (d *Dev) levelTime(level gpio.Level, interval time.Duration) time.Duration {
	start := now()
	for d.pin.Read() == level {
		if now().Sub(start) > maxLevelWait {
			return -1
		}
		if interval > 0 {
			sleep(interval)
		}
	}
	return now().Sub(start)
}

// levelTimePrecise is levelTime at the tightest achievable granularity,
// reading the pin back to back with no sleep in between. Only the 40 data
// bit measurements use it: their pulses are tens of microseconds wide and
// coarse polling would misclassify them.
func (d *Dev) levelTimePrecise(level gpio.Level) time.Duration {
	return d.levelTime(level, 0)
}

// confirm waits for the line to reach level and reports whether it then held
// that level for roughly want before releasing it. It validates the two
// acknowledgment phases of the handshake; it is never used in the bit loop,
// where the extra call overhead could swallow a bit.
func (d *Dev) confirm(level gpio.Level, want time.Duration) bool {
	start := now()
	for d.pin.Read() != level {
		if now().Sub(start) > maxLevelWait {
			return false
		}
	}
	held := d.levelTime(level, levelPoll)
	return held >= want-confirmSlack
}

// classifyBit maps a measured high-pulse width to a bit value. A width of
// exactly the threshold decodes as 1.
func classifyBit(t, threshold time.Duration) byte {
	if t >= threshold {
		return 1
	}
	return 0
}

// sample runs the wire protocol once and fills bits with the 40 classified
// bit values. It is terminal on the first failed phase and returns that
// phase's error.
func (d *Dev) sample(bits *[40]byte) error {
	// Wake the sensor: hold the line low, then release it to input with
	// the pull-up keeping it high until the sensor answers.
	if err := d.pin.Out(gpio.Low); err != nil {
		return fmt.Errorf("dhtxx: wake pulse: %w", err)
	}
	sleep(d.variant.wakeLow())
	if err := d.pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		d.pin.Out(gpio.High)
		return fmt.Errorf("dhtxx: releasing line: %w", err)
	}

	// The rest of the exchange is over in under 5ms and a GC pause in the
	// middle of it corrupts the bit timings.
	gcPercent := debug.SetGCPercent(-1)
	defer debug.SetGCPercent(gcPercent)

	// The sensor acknowledges with 80µs low, 80µs high.
	if !d.confirm(gpio.Low, ackPulse) {
		return ErrStartLow
	}
	if !d.confirm(gpio.High, ackPulse) {
		return ErrStartHigh
	}

	// 40 bits, each a fixed ~50µs low then a high pulse whose width is the
	// bit value: short for 0, long for 1. A width of exactly the threshold
	// decodes as 1.
	threshold := d.variant.bitThreshold()
	for i := range bits {
		if d.levelTime(gpio.Low, levelPoll) < 0 {
			return ErrDataLow
		}
		t := d.levelTimePrecise(gpio.High)
		if t < 0 {
			return ErrDataRead
		}
		bits[i] = classifyBit(t, threshold)
	}

	// The sensor closes with one more ~50µs low before releasing the line
	// to its high idle state.
	if d.levelTime(gpio.Low, levelPoll) < 0 {
		return ErrDataEOF
	}
	return nil
}
