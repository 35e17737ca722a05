package sensironsht4x_test

import (
	"testing"

	"github.com/go-sensors/sensironsht4x"
	"github.com/go-sensors/sensironsht4x/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

func Test_PeriphBus_reads_serial_number_and_measures(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	delay := mocks.NewMockDelay(ctrl)
	delay.EXPECT().
		DelayMicroseconds(uint32(6_900))
	playback := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x44, W: []byte{0x89}},
			{Addr: 0x44, R: []byte{0x01, 0x02, 0x17, 0x03, 0x04, 0x68}},
			{Addr: 0x44, W: []byte{0xFD}},
			{Addr: 0x44, R: []byte{0x12, 0x34, 0x37, 0x56, 0x78, 0x7D}},
		},
	}
	session := sensironsht4x.NewSession(sensironsht4x.NewPeriphBus(playback), sensironsht4x.DefaultConfig())

	// Act
	serial, serialErr := session.SerialNumber()
	measurement, measureErr := session.Measure(delay)

	// Assert
	require.NoError(t, serialErr)
	require.NoError(t, measureErr)
	assert.Equal(t, sensironsht4x.SerialNumber(0x01020304), serial)
	assert.Equal(t, uint16(0x1234), measurement.RawTemperature())
	assert.Equal(t, uint16(0x5678), measurement.RawHumidity())
	assert.NoError(t, playback.Close())
}

func Test_PeriphBus_surfaces_bus_errors(t *testing.T) {
	// Arrange
	playback := &i2ctest.Playback{
		Ops:       []i2ctest.IO{{Addr: 0x44, W: []byte{0x94}}},
		DontPanic: true,
	}
	session := sensironsht4x.NewSession(sensironsht4x.NewPeriphBus(playback), sensironsht4x.DefaultConfig())

	// Act
	_, err := session.SerialNumber()

	// Assert
	var busErr *sensironsht4x.BusError
	assert.ErrorAs(t, err, &busErr)
}

func Test_Measurement_Env_converts_to_periph_units(t *testing.T) {
	// Arrange
	measurement := sensironsht4x.NewMeasurement(0x6666, 0x6666)

	// Act
	env := measurement.Env()

	// Assert
	assert.InDelta(t, float64(25*physic.Kelvin+physic.ZeroCelsius), float64(env.Temperature), float64(physic.MilliCelsius))
	assert.InDelta(t, float64(44*physic.PercentRH), float64(env.Humidity), float64(physic.MicroRH))
}
