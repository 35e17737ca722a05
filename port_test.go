package sensironsht4x_test

import (
	"io"
	"testing"

	"github.com/go-sensors/core/io/mocks"
	"github.com/go-sensors/sensironsht4x"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func Test_PortBus_fails_on_short_read(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	port := mocks.NewMockPort(ctrl)
	port.EXPECT().
		Write([]byte{0x89}).
		Return(1, nil)
	port.EXPECT().
		Read(gomock.Any()).
		Return(3, nil)
	session := sensironsht4x.NewSession(sensironsht4x.NewPortBus(port), sensironsht4x.DefaultConfig())

	// Act
	_, err := session.SerialNumber()

	// Assert
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.ErrorContains(t, err, "read 3 of 6 bytes")
}
