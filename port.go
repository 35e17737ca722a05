package sensironsht4x

import (
	"io"

	coreio "github.com/go-sensors/core/io"
	"github.com/pkg/errors"
)

// NewPortBus adapts a go-sensors port that is already bound to the sensor's
// address. The address passed to Write and Read is ignored.
func NewPortBus(port coreio.Port) Bus {
	return &portBus{port: port}
}

type portBus struct {
	port coreio.Port
}

func (p *portBus) Write(_ uint16, w []byte) error {
	_, err := p.port.Write(w)
	return err
}

func (p *portBus) Read(_ uint16, r []byte) error {
	n, err := p.port.Read(r)
	if err != nil {
		return err
	}
	if n < len(r) {
		return errors.Wrapf(io.ErrUnexpectedEOF, "read %d of %d bytes", n, len(r))
	}
	return nil
}
