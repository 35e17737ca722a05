package sensironsht4x

import (
	"periph.io/x/conn/v3/i2c"
)

// NewPeriphBus adapts a periph I2C bus.
//
// Writes and reads are issued as separate Tx calls so that each ends with a
// STOP condition.
func NewPeriphBus(b i2c.Bus) Bus {
	return &periphBus{b: b}
}

type periphBus struct {
	b i2c.Bus
}

func (p *periphBus) Write(addr uint16, w []byte) error {
	return p.b.Tx(addr, w, nil)
}

func (p *periphBus) Read(addr uint16, r []byte) error {
	return p.b.Tx(addr, nil, r)
}

func (p *periphBus) String() string {
	return p.b.String()
}
