// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dhtxx

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Dev is a handle to a DHT sensor on a single GPIO line.
//
// The line is shared with the sensor and must not be touched by anything
// else while a read is in flight. Reads are serialized internally.
type Dev struct {
	variant Variant

	mu       sync.Mutex
	pin      gpio.PinIO
	shutdown chan struct{}
}

// New returns a Dev driving the sensor variant attached to p.
//
// The line is parked high so the sensor is ready for the first read. Give
// the sensor a second to settle after power-up before reading.
func New(p gpio.PinIO, v Variant) (*Dev, error) {
	if p == nil {
		return nil, errors.New("dhtxx: pin is required")
	}
	switch v {
	case DHT11, DHT22:
	default:
		return nil, fmt.Errorf("dhtxx: unknown sensor variant %d", uint8(v))
	}
	if err := p.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("dhtxx: parking line high: %w", err)
	}
	return &Dev{variant: v, pin: p}, nil
}

// SetPin rebinds the device to another GPIO line. The previous line is left
// as is; the new one is parked high ready for the next read.
func (d *Dev) SetPin(p gpio.PinIO) error {
	if p == nil {
		return errors.New("dhtxx: pin is required")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := p.Out(gpio.High); err != nil {
		return fmt.Errorf("dhtxx: parking line high: %w", err)
	}
	d.pin = p
	return nil
}

// ReadFrame performs one full protocol exchange and returns the validated
// raw frame. On ErrDataChecksum or ErrZeroSamples the offending frame is
// returned alongside the error for diagnostic use; on wire-level errors the
// frame is zero and no bytes were decoded.
//
// The call blocks for the whole exchange, dominated by the wake pulse
// (around 20ms). Respect the variant's MinSampleInterval between calls.
func (d *Dev) ReadFrame() (Frame, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var bits [40]byte
	err := d.sample(&bits)
	// Park the line high for the next exchange, whatever happened.
	d.pin.Out(gpio.High)
	if err != nil {
		return Frame{}, err
	}

	f := packBits(&bits)
	if err := f.validate(); err != nil {
		return f, err
	}
	return f, nil
}

// Read returns the current temperature in whole degrees Celsius and relative
// humidity in whole percent. This is the sensor's native resolution for the
// DHT11; DHT22 readings are truncated toward zero.
func (d *Dev) Read() (temperature, humidity int, err error) {
	f, err := d.ReadFrame()
	if err != nil {
		return 0, 0, err
	}
	t, h := d.variant.deci(f)
	return t / 10, h / 10, nil
}

// ReadFloat returns the current temperature in degrees Celsius and relative
// humidity in percent at the sensor's full resolution: one decimal digit for
// the DHT22, whole units for the DHT11.
func (d *Dev) ReadFloat() (temperature, humidity float64, err error) {
	f, err := d.ReadFrame()
	if err != nil {
		return 0, 0, err
	}
	t, h := d.variant.deci(f)
	return float64(t) / 10, float64(h) / 10, nil
}

// Sense implements physic.SenseEnv. Pressure is always 0 since the sensor
// does not measure it.
func (d *Dev) Sense(e *physic.Env) error {
	e.Temperature = 0
	e.Pressure = 0
	e.Humidity = 0

	f, err := d.ReadFrame()
	if err != nil {
		return err
	}
	t, h := d.variant.deci(f)
	e.Temperature = physic.ZeroCelsius + (physic.Celsius/10)*physic.Temperature(t)
	e.Humidity = physic.RelativeHumidity(h) * physic.MilliRH
	return nil
}

// SenseContinuous returns a channel that yields a reading every interval.
// The minimum interval is the variant's MinSampleInterval (1s for DHT11, 2s
// for DHT22). To end the reads, call Halt().
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if min := d.variant.MinSampleInterval(); interval < min {
		return nil, fmt.Errorf("dhtxx: invalid interval, %s minimum for %s", min, d.variant)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shutdown != nil {
		return nil, errors.New("dhtxx: sense continuous already running")
	}

	d.shutdown = make(chan struct{})
	ch := make(chan physic.Env, 16)
	go func(stop chan struct{}) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				close(ch)
				return
			case <-ticker.C:
				e := physic.Env{}
				if err := d.Sense(&e); err == nil {
					ch <- e
				}
			}
		}
	}(d.shutdown)
	return ch, nil
}

// Precision implements physic.SenseEnv.
func (d *Dev) Precision(e *physic.Env) {
	if d.variant == DHT11 {
		e.Temperature = physic.Celsius
		e.Humidity = physic.PercentRH
	} else {
		e.Temperature = physic.Celsius / 10
		e.Humidity = physic.MilliRH
	}
	e.Pressure = 0
}

// Halt implements conn.Resource. It interrupts a running SenseContinuous().
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shutdown != nil {
		close(d.shutdown)
		d.shutdown = nil
	}
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("%s{%s}", d.variant, d.pin)
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
