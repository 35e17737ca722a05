package sensironsht4x

import (
	"tinygo.org/x/drivers"
)

// NewTinyGoBus adapts a TinyGo drivers I2C bus
func NewTinyGoBus(b drivers.I2C) Bus {
	return tinygoBus{b: b}
}

type tinygoBus struct {
	b drivers.I2C
}

func (t tinygoBus) Write(addr uint16, w []byte) error {
	return t.b.Tx(addr, w, nil)
}

func (t tinygoBus) Read(addr uint16, r []byte) error {
	return t.b.Tx(addr, nil, r)
}
