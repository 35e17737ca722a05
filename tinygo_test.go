package sensironsht4x_test

import (
	"testing"

	"github.com/go-sensors/sensironsht4x"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tinygo.org/x/drivers"
)

var _ drivers.I2C = (*fakeI2C)(nil)

type transaction struct {
	addr uint16
	w    []byte
	rn   int
}

// fakeI2C records each Tx and answers reads with a fixed response.
type fakeI2C struct {
	response []byte
	txs      []transaction
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	f.txs = append(f.txs, transaction{addr: addr, w: append([]byte(nil), w...), rn: len(r)})
	copy(r, f.response)
	return nil
}

func Test_TinyGoBus_separates_write_and_read(t *testing.T) {
	// Arrange
	i2c := &fakeI2C{response: []byte{0x01, 0x02, 0x17, 0x03, 0x04, 0x68}}
	session := sensironsht4x.NewSession(sensironsht4x.NewTinyGoBus(i2c), sensironsht4x.DefaultConfig())
	session.Address = 0x46

	// Act
	serial, err := session.SerialNumber()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, sensironsht4x.SerialNumber(0x01020304), serial)
	assert.Equal(t, []transaction{
		{addr: 0x46, w: []byte{0x89}, rn: 0},
		{addr: 0x46, w: nil, rn: 6},
	}, i2c.txs)
}
