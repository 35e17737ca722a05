// This package provides an implementation to read temperature and relative humidity measurements from a Sensiron SHT4x sensor.
package sensironsht4x

import (
	"fmt"
	"time"
)

const (
	commandReadSerialNumber byte = 0x89
	commandSoftReset        byte = 0x94

	softResetMilliseconds uint32 = 1
)

// HeaterPower is the power applied to the sensor heater before a measurement
type HeaterPower uint8

const (
	// HeaterHigh is 200mW nominal
	HeaterHigh HeaterPower = iota
	// HeaterMedium is 110mW nominal
	HeaterMedium
	// HeaterLow is 20mW nominal
	HeaterLow
)

func (p HeaterPower) String() string {
	switch p {
	case HeaterHigh:
		return "high"
	case HeaterMedium:
		return "medium"
	default:
		return "low"
	}
}

// HeaterDuration is the length of the heater pulse before a measurement
type HeaterDuration uint8

const (
	// HeaterLong is a 1s pulse
	HeaterLong HeaterDuration = iota
	// HeaterShort is a 0.1s pulse
	HeaterShort
)

func (d HeaterDuration) String() string {
	if d == HeaterLong {
		return "long"
	}
	return "short"
}

type precision uint8

const (
	precisionHigh precision = iota
	precisionMedium
	precisionLow
)

// ReadingMode selects the repeatability of a measurement and whether the heater
// is pulsed before it. Heated measurements are always taken at high precision.
//
// The zero value is HighPrecision.
type ReadingMode struct {
	precision precision
	heated    bool
	power     HeaterPower
	duration  HeaterDuration
}

var (
	// HighPrecision has a repeatability of 0.04°C and 0.08%RH
	HighPrecision = ReadingMode{precision: precisionHigh}
	// MediumPrecision has a repeatability of 0.07°C and 0.15%RH
	MediumPrecision = ReadingMode{precision: precisionMedium}
	// LowPrecision has a repeatability of 0.1°C and 0.25%RH
	LowPrecision = ReadingMode{precision: precisionLow}
)

// HighPrecisionWithHeater pulses the heater before taking a high precision measurement.
//
// The heater is designed for a maximum duty cycle of 10%.
func HighPrecisionWithHeater(power HeaterPower, duration HeaterDuration) ReadingMode {
	return ReadingMode{
		precision: precisionHigh,
		heated:    true,
		power:     power,
		duration:  duration,
	}
}

// AllReadingModes returns every reading mode supported by the sensor
func AllReadingModes() []ReadingMode {
	modes := []ReadingMode{HighPrecision, MediumPrecision, LowPrecision}
	for _, power := range []HeaterPower{HeaterHigh, HeaterMedium, HeaterLow} {
		for _, duration := range []HeaterDuration{HeaterLong, HeaterShort} {
			modes = append(modes, HighPrecisionWithHeater(power, duration))
		}
	}
	return modes
}

// Heater returns the heater settings of the mode, if it uses the heater
func (m ReadingMode) Heater() (HeaterPower, HeaterDuration, bool) {
	return m.power, m.duration, m.heated
}

// CommandByte returns the single byte command that starts a measurement in this mode
func (m ReadingMode) CommandByte() byte {
	if m.heated {
		switch m.power {
		case HeaterHigh:
			if m.duration == HeaterLong {
				return 0x39
			}
			return 0x32
		case HeaterMedium:
			if m.duration == HeaterLong {
				return 0x2F
			}
			return 0x24
		default:
			if m.duration == HeaterLong {
				return 0x1E
			}
			return 0x15
		}
	}

	switch m.precision {
	case precisionMedium:
		return 0xF6
	case precisionLow:
		return 0xE0
	default:
		return 0xFD
	}
}

func (m ReadingMode) String() string {
	if m.heated {
		return fmt.Sprintf("high precision with %v heater (%v)", m.power, m.duration)
	}
	switch m.precision {
	case precisionMedium:
		return "medium precision"
	case precisionLow:
		return "low precision"
	default:
		return "high precision"
	}
}

// DelayMode selects which published timing table is used to wait for a measurement.
//
// The sensor NACKs reads attempted before the measurement is ready, so Maximum
// trades latency for fewer failed first reads.
type DelayMode uint8

const (
	Typical DelayMode = iota
	Maximum
)

func (d DelayMode) String() string {
	if d == Maximum {
		return "maximum"
	}
	return "typical"
}

// Microseconds returns how long to wait after starting a measurement in the given mode
func (d DelayMode) Microseconds(mode ReadingMode) uint32 {
	maximum := d == Maximum

	if mode.heated {
		if mode.duration == HeaterLong {
			if maximum {
				return 1_100_000
			}
			return 1_000_000
		}
		if maximum {
			return 110_000
		}
		return 100_000
	}

	switch mode.precision {
	case precisionMedium:
		if maximum {
			return 4_500
		}
		return 3_700
	case precisionLow:
		if maximum {
			return 1_600
		}
		return 1_300
	default:
		if maximum {
			return 8_300
		}
		return 6_900
	}
}

// Duration is Microseconds as a time.Duration
func (d DelayMode) Duration(mode ReadingMode) time.Duration {
	return time.Duration(d.Microseconds(mode)) * time.Microsecond
}
