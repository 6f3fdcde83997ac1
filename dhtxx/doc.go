// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package dhtxx controls an AOSONG DHT11 or DHT22 (AM2302) temperature and
// humidity sensor over a single bit-banged GPIO line.
//
// The sensor speaks a one-wire pulse-width protocol: the host holds the line
// low to wake the sensor, the sensor acknowledges, then clocks out 40 bits
// where the duration of each high pulse encodes the bit value. The driver
// measures those pulses by polling the pin, so the calling goroutine is busy
// for the whole exchange (tens of milliseconds, dominated by the wake pulse).
//
// The dhtxx.Dev type implements the physic.SenseEnv interface. The DHT11
// reports whole degrees Celsius and whole percent relative humidity; the
// DHT22 reports both with one decimal digit.
//
// Do not sample the DHT11 more than once per second, or the DHT22 more than
// once every two seconds. The driver does not enforce this for single reads;
// SenseContinuous rejects shorter intervals.
//
// # Datasheets
//
// https://cdn-shop.adafruit.com/datasheets/DHT11-chinese.pdf
//
// https://cdn-shop.adafruit.com/datasheets/DHT22.pdf
package dhtxx
