package sensironsht4x

import (
	"github.com/go-sensors/sensironsht4x/internal/mathx"
)

const (
	fullScale = 65535

	minHumidity = 0
	maxHumidity = 100
)

// Celsius converts a raw temperature reading to degrees Celsius.
func Celsius(reading uint16) float64 {
	return -45 + 175*(float64(reading)/fullScale)
}

// Fahrenheit converts a raw temperature reading to degrees Fahrenheit.
func Fahrenheit(reading uint16) float64 {
	return -49 + 315*(float64(reading)/fullScale)
}

// Humidity converts a raw humidity reading to percent relative humidity.
//
// The sensor may report non-physical values at the edges of its range, so the
// result is clamped to 0..100 %RH. Temperatures are never clamped.
func Humidity(reading uint16) float64 {
	converted := -6 + 125*(float64(reading)/fullScale)
	return mathx.Clamp(converted, minHumidity, maxHumidity)
}

// TemperatureUnit selects the scale a raw temperature reading is converted to
type TemperatureUnit uint8

const (
	UnitCelsius TemperatureUnit = iota
	UnitFahrenheit
)

// Convert converts a raw temperature reading to this unit
func (u TemperatureUnit) Convert(reading uint16) float64 {
	if u == UnitFahrenheit {
		return Fahrenheit(reading)
	}
	return Celsius(reading)
}

// Symbol returns the unit suffix used when printing a temperature
func (u TemperatureUnit) Symbol() string {
	if u == UnitFahrenheit {
		return "°F"
	}
	return "°C"
}

func (u TemperatureUnit) String() string {
	if u == UnitFahrenheit {
		return "fahrenheit"
	}
	return "celsius"
}
