// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dhtxx

import "errors"

// Protocol errors, one per acquisition phase. A read either succeeds with a
// checksum-valid frame or fails with exactly one of these; the driver never
// retries on its own.
var (
	// ErrStartLow means the sensor did not pull the line low to acknowledge
	// the wake pulse.
	ErrStartLow = errors.New("dhtxx: no low acknowledgment after wake pulse")

	// ErrStartHigh means the sensor did not release the line high after its
	// low acknowledgment.
	ErrStartHigh = errors.New("dhtxx: no high acknowledgment after wake pulse")

	// ErrDataLow means the fixed low phase preceding a data bit never ended.
	ErrDataLow = errors.New("dhtxx: data bit low phase did not complete")

	// ErrDataRead means the high pulse carrying a data bit could not be
	// measured in time.
	ErrDataRead = errors.New("dhtxx: data bit high pulse did not complete")

	// ErrDataEOF means the line did not return to idle after the 40th bit.
	ErrDataEOF = errors.New("dhtxx: line did not return to idle after frame")

	// ErrDataChecksum means the checksum byte did not match the sum of the
	// four data bytes.
	ErrDataChecksum = errors.New("dhtxx: frame checksum mismatch")

	// ErrZeroSamples means all five frame bytes were zero. A live sensor
	// never reports exactly zero for both quantities at once, so this is
	// treated as a wiring or sensing fault even though the checksum of an
	// all-zero frame is trivially valid.
	ErrZeroSamples = errors.New("dhtxx: all-zero frame")
)
