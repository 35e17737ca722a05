package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	logger "github.com/d2r2/go-logger"
	"github.com/go-sensors/sensironsht4x"
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

var lg = logger.NewPackageLogger("main", logger.InfoLevel)

func main() {
	defer logger.FinalizeLogger()

	bus := flag.String("bus", "", "Name of the I²C bus")
	addr := flag.String("addr", "0x44", "I²C address of the sensor")
	mode := flag.String("mode", "high", "Reading mode: high, medium or low")
	heater := flag.String("heater", "", "Pulse the heater before measuring: high-long, high-short, medium-long, medium-short, low-long or low-short")
	maxDelay := flag.Bool("max-delay", false, "Wait the maximum rather than the typical measurement time")
	unit := flag.String("unit", "celsius", "Temperature unit: celsius or fahrenheit")
	skipCRC := flag.Bool("skip-crc", false, "Do not validate CRCs of data read from the sensor")
	reset := flag.Bool("reset", false, "Soft reset the sensor before measuring")
	interval := flag.Duration("interval", time.Second, "Time between measurements")
	count := flag.Int("count", 1, "Number of measurements to take, or 0 to measure until killed")
	verbose := flag.Bool("v", false, "Log debug output")
	flag.Parse()

	if *verbose {
		for _, pkg := range []string{"main", "sht4x"} {
			if err := logger.ChangePackageLogLevel(pkg, logger.DebugLevel); err != nil {
				fail(err)
			}
		}
	}

	config, err := parseConfig(*mode, *heater, *maxDelay, *unit, *skipCRC)
	if err != nil {
		fail(err)
	}
	address, err := strconv.ParseUint(*addr, 0, 7)
	if err != nil {
		fail(errors.Wrapf(err, "invalid address %q", *addr))
	}

	if _, err := host.Init(); err != nil {
		fail(errors.Wrap(err, "failed to initialize host"))
	}
	b, err := i2creg.Open(*bus)
	if err != nil {
		fail(errors.Wrap(err, "failed to open I²C bus"))
	}
	defer b.Close()

	session := sensironsht4x.NewSession(sensironsht4x.NewPeriphBus(b), config)
	session.Address = uint16(address)
	lg.Debugf("using %v at 0x%02X with %v, %v delay", b, session.Address, config.ReadingMode, config.DelayMode)

	if *reset {
		if err := session.SoftReset(sensironsht4x.SleepDelay{}); err != nil {
			fail(errors.Wrap(err, "failed to reset sensor"))
		}
	}

	serial, err := session.SerialNumber()
	if err != nil {
		fail(errors.Wrap(err, "failed to read serial number"))
	}
	fmt.Printf("Serial: %v\n", serial)

	for i := 0; *count == 0 || i < *count; i++ {
		if i > 0 {
			time.Sleep(*interval)
		}
		measurement, err := session.Measure(sensironsht4x.SleepDelay{})
		if err != nil {
			fail(errors.Wrap(err, "failed to measure"))
		}
		lg.Debugf("raw temperature 0x%04X, raw humidity 0x%04X", measurement.RawTemperature(), measurement.RawHumidity())
		fmt.Printf("Temperature: %.2f%s\nHumidity: %.2f%%RH\n",
			measurement.TemperatureIn(config.TemperatureUnit), config.TemperatureUnit.Symbol(), measurement.Humidity())
	}
}

func fail(err error) {
	lg.Errorf("%v", err)
	logger.FinalizeLogger()
	os.Exit(1)
}

func parseConfig(mode, heater string, maxDelay bool, unit string, skipCRC bool) (sensironsht4x.Config, error) {
	config := sensironsht4x.DefaultConfig()
	config.SkipCRC = skipCRC
	if maxDelay {
		config.DelayMode = sensironsht4x.Maximum
	}

	switch unit {
	case "celsius", "c":
		config.TemperatureUnit = sensironsht4x.UnitCelsius
	case "fahrenheit", "f":
		config.TemperatureUnit = sensironsht4x.UnitFahrenheit
	default:
		return config, errors.Errorf("unknown temperature unit %q", unit)
	}

	if heater != "" {
		for _, m := range sensironsht4x.AllReadingModes() {
			power, duration, heated := m.Heater()
			if heated && heater == fmt.Sprintf("%v-%v", power, duration) {
				config.ReadingMode = m
				return config, nil
			}
		}
		return config, errors.Errorf("unknown heater setting %q", heater)
	}

	switch mode {
	case "high":
		config.ReadingMode = sensironsht4x.HighPrecision
	case "medium":
		config.ReadingMode = sensironsht4x.MediumPrecision
	case "low":
		config.ReadingMode = sensironsht4x.LowPrecision
	default:
		return config, errors.Errorf("unknown reading mode %q", mode)
	}
	return config, nil
}
