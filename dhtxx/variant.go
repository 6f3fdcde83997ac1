// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dhtxx

import "time"

// Variant selects the sensor family a Dev talks to. The two families share
// the wire protocol but differ in timing constants and in how the raw bytes
// scale into physical values.
type Variant uint8

const (
	// DHT11 reports whole degrees Celsius and whole percent humidity.
	DHT11 Variant = 11
	// DHT22 (also sold as AM2302) reports both values in tenths using
	// 16-bit big-endian fields, temperature in sign-magnitude form.
	DHT22 Variant = 22
)

func (v Variant) String() string {
	switch v {
	case DHT11:
		return "DHT11"
	case DHT22:
		return "DHT22"
	default:
		return "unknown"
	}
}

// wakeLow is how long the host must hold the line low to wake the sensor
// (DHT11 datasheet: at least 18ms; the DHT22 tolerates the same order).
func (v Variant) wakeLow() time.Duration {
	if v == DHT11 {
		return 20 * time.Millisecond
	}
	return 18 * time.Millisecond
}

// bitThreshold is the high-pulse width separating a 0 from a 1. A pulse
// lasting exactly the threshold decodes as 1. The datasheets guarantee at
// least a 2:1 ratio between the two pulse widths, which leaves room for the
// polling granularity error of the measurement.
func (v Variant) bitThreshold() time.Duration {
	if v == DHT11 {
		return 28 * time.Microsecond
	}
	return 40 * time.Microsecond
}

// MinSampleInterval is the shortest interval at which the sensor family may
// be sampled. Reading faster yields stale or corrupted frames; enforcing the
// interval between single reads is the caller's job.
func (v Variant) MinSampleInterval() time.Duration {
	if v == DHT11 {
		return time.Second
	}
	return 2 * time.Second
}

// deci converts a validated frame into tenths of degrees Celsius and tenths
// of percent relative humidity.
//
// The DHT11 stores whole units in the integer bytes and keeps the decimal
// bytes at zero. The DHT22 stores 16-bit big-endian tenths, with the
// temperature sign carried by the top bit of the high byte (sign-magnitude,
// not two's complement).
func (v Variant) deci(f Frame) (temp, humidity int) {
	if v == DHT11 {
		return int(f[2]) * 10, int(f[0]) * 10
	}
	humidity = int(f[0])<<8 | int(f[1])
	temp = int(f[2]&0x7f)<<8 | int(f[3])
	if f[2]&0x80 != 0 {
		temp = -temp
	}
	return temp, humidity
}
