package sensironsht4x

import (
	"fmt"

	"github.com/go-sensors/core/units"
	"periph.io/x/conn/v3/physic"
)

// Measurement is a temperature and humidity reading that passed CRC validation.
//
// The raw sensor codes are kept so that the unit is chosen when the
// measurement is read rather than when it is taken.
type Measurement struct {
	rawTemperature uint16
	rawHumidity    uint16
}

// NewMeasurement creates a Measurement from raw sensor codes
func NewMeasurement(rawTemperature, rawHumidity uint16) Measurement {
	return Measurement{rawTemperature: rawTemperature, rawHumidity: rawHumidity}
}

func measurementFrom(v validated) Measurement {
	temperature, humidity := v.words()
	return NewMeasurement(temperature, humidity)
}

// RawTemperature is the unconverted temperature code read from the sensor
func (m Measurement) RawTemperature() uint16 {
	return m.rawTemperature
}

// RawHumidity is the unconverted humidity code read from the sensor
func (m Measurement) RawHumidity() uint16 {
	return m.rawHumidity
}

func (m Measurement) Celsius() float64 {
	return Celsius(m.rawTemperature)
}

func (m Measurement) Fahrenheit() float64 {
	return Fahrenheit(m.rawTemperature)
}

// Humidity is the relative humidity in percent, clamped to 0..100
func (m Measurement) Humidity() float64 {
	return Humidity(m.rawHumidity)
}

// TemperatureIn converts the temperature to the given unit
func (m Measurement) TemperatureIn(unit TemperatureUnit) float64 {
	return unit.Convert(m.rawTemperature)
}

func (m Measurement) CelsiusFixed() Int16_16 {
	return CelsiusFixed(m.rawTemperature)
}

func (m Measurement) FahrenheitFixed() Int16_16 {
	return FahrenheitFixed(m.rawTemperature)
}

func (m Measurement) HumidityFixed() Int16_16 {
	return HumidityFixed(m.rawHumidity)
}

// Temperature returns the temperature as a go-sensors unit
func (m Measurement) Temperature() units.Temperature {
	return units.Temperature(m.Celsius() * float64(units.DegreeCelsius))
}

// RelativeHumidity returns the humidity as a go-sensors unit, with the
// temperature it was measured at
func (m Measurement) RelativeHumidity() units.RelativeHumidity {
	return units.RelativeHumidity{
		Temperature: m.Temperature(),
		Percentage:  m.Humidity() / 100,
	}
}

// Env returns the measurement as a periph environment reading
func (m Measurement) Env() physic.Env {
	return physic.Env{
		Temperature: physic.Temperature(m.Celsius()*float64(physic.Kelvin)) + physic.ZeroCelsius,
		Humidity:    physic.RelativeHumidity(m.Humidity() * float64(physic.PercentRH)),
	}
}

func (m Measurement) String() string {
	return fmt.Sprintf("%.2f°C, %.2f%%RH", m.Celsius(), m.Humidity())
}

// SerialNumber is the 32-bit serial number programmed into the sensor at the factory
type SerialNumber uint32

func (s SerialNumber) String() string {
	return fmt.Sprintf("0x%08X", uint32(s))
}
