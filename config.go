package sensironsht4x

// Config holds the default settings a Session measures with.
//
// The zero value takes high precision measurements with typical delays,
// reports Celsius and validates every CRC.
type Config struct {
	ReadingMode     ReadingMode
	DelayMode       DelayMode
	TemperatureUnit TemperatureUnit
	// SkipCRC returns data bytes without checking their CRCs. Only use it on a
	// bus known to be reliable.
	SkipCRC bool
}

// DefaultConfig returns the default measurement settings
func DefaultConfig() Config {
	return Config{
		ReadingMode:     HighPrecision,
		DelayMode:       Typical,
		TemperatureUnit: UnitCelsius,
		SkipCRC:         false,
	}
}
