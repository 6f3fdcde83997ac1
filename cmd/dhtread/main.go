// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// dhtread reads a DHT11 or DHT22 sensor wired to a GPIO pin and prints the
// temperature and humidity, once or on an interval.
package main

import (
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/dhtxx/dhtxx"
)

func main() {
	pinName := flag.String("pin", "GPIO4", "name of the GPIO pin the sensor data line is wired to")
	model := flag.String("model", "dht22", "sensor model, dht11 or dht22")
	interval := flag.Duration("interval", 0, "poll continuously at this interval instead of reading once")
	flag.Parse()

	var variant dhtxx.Variant
	switch *model {
	case "dht11":
		variant = dhtxx.DHT11
	case "dht22", "am2302":
		variant = dhtxx.DHT22
	default:
		log.Fatal("unknown sensor model", "model", *model)
	}

	if _, err := host.Init(); err != nil {
		log.Fatal("failed to initialize periph host", "err", err)
	}
	p := gpioreg.ByName(*pinName)
	if p == nil {
		log.Fatal("no such pin", "pin", *pinName)
	}
	d, err := dhtxx.New(p, variant)
	if err != nil {
		log.Fatal("failed to initialize sensor", "err", err)
	}
	log.Info("sensor ready", "dev", d.String())

	if *interval <= 0 {
		// The sensor needs a moment on the bus after power-up before it
		// answers a wake pulse.
		time.Sleep(time.Second)
		e := physic.Env{}
		if err := d.Sense(&e); err != nil {
			log.Fatal("read failed", "err", err)
		}
		log.Info("reading", "temperature", e.Temperature, "humidity", e.Humidity)
		return
	}

	ch, err := d.SenseContinuous(*interval)
	if err != nil {
		log.Fatal("failed to start polling", "err", err)
	}
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	go func() {
		<-stop
		log.Info("interrupted, halting")
		if err := d.Halt(); err != nil {
			log.Error("halt failed", "err", err)
		}
	}()
	for e := range ch {
		log.Info("reading", "temperature", e.Temperature, "humidity", e.Humidity)
	}
}
