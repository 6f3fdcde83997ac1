// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dhtxx

// Frame is one raw 40-bit sample from the sensor, packed into five bytes:
// humidity integer part, humidity decimal part, temperature integer part,
// temperature decimal part, checksum.
type Frame [5]byte

// packBits folds 40 classified bit values into a Frame, most significant bit
// of each byte first, matching the order the sensor clocks them out.
func packBits(bits *[40]byte) Frame {
	var f Frame
	for i, b := range bits {
		f[i/8] = f[i/8]<<1 | b
	}
	return f
}

// HumidityRaw returns the two raw humidity bytes.
func (f Frame) HumidityRaw() (integer, decimal byte) {
	return f[0], f[1]
}

// TemperatureRaw returns the two raw temperature bytes. For the DHT22 the
// top bit of the integer byte is the sign bit.
func (f Frame) TemperatureRaw() (integer, decimal byte) {
	return f[2], f[3]
}

// Checksum returns the checksum byte as transmitted by the sensor.
func (f Frame) Checksum() byte {
	return f[4]
}

// validate applies the two independent acceptance gates: the checksum byte
// must equal the mod-256 sum of the four data bytes, and the frame must not
// be all zero. An all-zero frame passes the checksum gate, so the order
// matters only in which error gets reported.
func (f Frame) validate() error {
	if f[4] != f[0]+f[1]+f[2]+f[3] {
		return ErrDataChecksum
	}
	if f == (Frame{}) {
		return ErrZeroSamples
	}
	return nil
}
