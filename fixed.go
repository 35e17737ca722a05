package sensironsht4x

import (
	"strconv"

	"github.com/go-sensors/sensironsht4x/internal/mathx"
)

// Int16_16 is a signed 16.16 fixed-point number.
//
// The conversions below produce the same values as their floating-point
// counterparts to within 315/65536, the error of the truncated 16-bit
// fraction multiplied by the largest scale factor.
type Int16_16 int32

// I returns the integer value i as an Int16_16.
func I(i int) Int16_16 {
	return Int16_16(i << 16)
}

// Float64 returns x as a float64.
func (x Int16_16) Float64() float64 {
	return float64(x) / (1 << 16)
}

// Floor returns the greatest integer value less than or equal to x.
func (x Int16_16) Floor() int {
	return int(x >> 16)
}

// Round returns the nearest integer value to x. Ties are rounded up.
func (x Int16_16) Round() int {
	return int((x + 0x8000) >> 16)
}

func (x Int16_16) String() string {
	return strconv.FormatFloat(x.Float64(), 'f', -1, 64)
}

// readingFraction returns reading/65535 as an unsigned 16.16 fraction,
// truncated, so that 65535 maps to exactly 1.0.
func readingFraction(reading uint16) Int16_16 {
	return Int16_16((uint32(reading) << 16) / fullScale)
}

// CelsiusFixed converts a raw temperature reading to degrees Celsius.
func CelsiusFixed(reading uint16) Int16_16 {
	return I(-45) + 175*readingFraction(reading)
}

// FahrenheitFixed converts a raw temperature reading to degrees Fahrenheit.
func FahrenheitFixed(reading uint16) Int16_16 {
	return I(-49) + 315*readingFraction(reading)
}

// HumidityFixed converts a raw humidity reading to percent relative humidity,
// clamped to 0..100 %RH.
func HumidityFixed(reading uint16) Int16_16 {
	converted := I(-6) + 125*readingFraction(reading)
	return mathx.Clamp(converted, I(minHumidity), I(maxHumidity))
}
