package sensironsht4x

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDestroyed is returned by operations on a Session whose bus has been released
var ErrDestroyed = errors.New("session bus has been released")

// CrcFailureReason identifies which pair of data bytes failed CRC validation
type CrcFailureReason uint8

const (
	SerialNumberFirstPair CrcFailureReason = iota
	SerialNumberSecondPair
	TemperatureBytes
	HumidityBytes
)

func (r CrcFailureReason) String() string {
	switch r {
	case SerialNumberFirstPair:
		return "first two bytes of serial number"
	case SerialNumberSecondPair:
		return "second two bytes of serial number"
	case TemperatureBytes:
		return "temperature bytes"
	case HumidityBytes:
		return "humidity bytes"
	default:
		return fmt.Sprintf("CrcFailureReason(%d)", uint8(r))
	}
}

// CrcValidationError indicates that two data bytes did not match their CRC
type CrcValidationError struct {
	Reason CrcFailureReason
	// Received holds the two data bytes followed by the CRC byte as read from the sensor
	Received [3]byte
	// Calculated is the checksum over all three received bytes, which is zero when they match
	Calculated byte
}

func (e *CrcValidationError) Error() string {
	return fmt.Sprintf("failed to validate crc for %v: received 0x%02X 0x%02X 0x%02X, calculated 0x%02X",
		e.Reason, e.Received[0], e.Received[1], e.Received[2], e.Calculated)
}

// BusError wraps an error reported by the bus during a write or read
type BusError struct {
	Op      string
	Address uint16
	Err     error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("i2c %s at 0x%02X: %v", e.Op, e.Address, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}
