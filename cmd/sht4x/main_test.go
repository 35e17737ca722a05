package main

import (
	"testing"

	"github.com/go-sensors/sensironsht4x"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseConfig_returns_defaults(t *testing.T) {
	// Act
	config, err := parseConfig("high", "", false, "celsius", false)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, sensironsht4x.DefaultConfig(), config)
}

func Test_parseConfig_applies_flags(t *testing.T) {
	// Act
	config, err := parseConfig("low", "", true, "f", true)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, sensironsht4x.LowPrecision, config.ReadingMode)
	assert.Equal(t, sensironsht4x.Maximum, config.DelayMode)
	assert.Equal(t, sensironsht4x.UnitFahrenheit, config.TemperatureUnit)
	assert.True(t, config.SkipCRC)
}

func Test_parseConfig_heater_overrides_mode(t *testing.T) {
	// Act
	config, err := parseConfig("low", "medium-short", false, "celsius", false)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, byte(0x24), config.ReadingMode.CommandByte())
}

func Test_parseConfig_rejects_unknown_values(t *testing.T) {
	cases := []struct {
		name   string
		mode   string
		heater string
		unit   string
		errMsg string
	}{
		{"mode", "ultra", "", "celsius", `unknown reading mode "ultra"`},
		{"heater", "high", "max-long", "celsius", `unknown heater setting "max-long"`},
		{"unit", "high", "", "kelvin", `unknown temperature unit "kelvin"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parseConfig(c.mode, c.heater, false, c.unit, false)
			assert.EqualError(t, err, c.errMsg)
		})
	}
}
