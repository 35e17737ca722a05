package sensironsht4x

// DefaultAddress is the I2C address of the SHT40-AD1B and most other SHT4x variants
const DefaultAddress uint16 = 0x44

// Session exchanges commands and responses with a single SHT4x sensor.
//
// A Session owns its bus and a response buffer that every operation reuses.
// It is not safe for concurrent use; callers sharing a sensor between
// goroutines must serialize calls themselves.
type Session struct {
	bus Bus
	buf [frameLength]byte

	// Address is the 7-bit I2C address of the sensor. Changing it affects all
	// subsequent operations.
	Address uint16

	// Config holds the settings used by Measure and MeasureContext.
	Config Config
}

// NewSession creates a Session for a sensor at DefaultAddress
func NewSession(bus Bus, config Config) *Session {
	return &Session{
		bus:     bus,
		Address: DefaultAddress,
		Config:  config,
	}
}

// Destroy releases the bus and returns it to the caller. Any later operation
// on the Session fails with ErrDestroyed.
func (s *Session) Destroy() Bus {
	bus := s.bus
	s.bus = nil
	return bus
}

// SerialNumber reads the sensor's serial number.
//
// No delay is needed between the command and its response, but they are still
// sent as two transactions.
func (s *Session) SerialNumber() (SerialNumber, error) {
	return s.serialNumber(blocking{})
}

// SoftReset resets the sensor and waits for it to return to idle
func (s *Session) SoftReset(delay Delay) error {
	return s.softReset(blocking{delay: delay})
}

// Measure reads temperature and humidity with the settings in s.Config
func (s *Session) Measure(delay Delay) (Measurement, error) {
	return s.MeasureWithSettings(delay, s.Config.ReadingMode, s.Config.DelayMode)
}

// MeasureWithSettings reads temperature and humidity with the given settings,
// leaving s.Config untouched.
//
// The call blocks for the delay required by the reading and delay modes,
// which is over a second for long heater pulses.
func (s *Session) MeasureWithSettings(delay Delay, mode ReadingMode, delayMode DelayMode) (Measurement, error) {
	return s.measure(blocking{delay: delay}, mode, delayMode)
}

func (s *Session) serialNumber(w waiter) (SerialNumber, error) {
	if err := s.write(w, commandReadSerialNumber); err != nil {
		return 0, err
	}
	f, err := s.read(w)
	if err != nil {
		return 0, err
	}

	data, err := f.fields(SerialNumberFirstPair, SerialNumberSecondPair, !s.Config.SkipCRC)
	if err != nil {
		return 0, err
	}
	return SerialNumber(data.uint32()), nil
}

func (s *Session) softReset(w waiter) error {
	if err := s.write(w, commandSoftReset); err != nil {
		return err
	}
	return w.delayMilliseconds(softResetMilliseconds)
}

func (s *Session) measure(w waiter, mode ReadingMode, delayMode DelayMode) (Measurement, error) {
	if err := s.write(w, mode.CommandByte()); err != nil {
		return Measurement{}, err
	}
	if err := w.delayMicroseconds(delayMode.Microseconds(mode)); err != nil {
		return Measurement{}, err
	}
	f, err := s.read(w)
	if err != nil {
		return Measurement{}, err
	}

	data, err := f.fields(TemperatureBytes, HumidityBytes, !s.Config.SkipCRC)
	if err != nil {
		return Measurement{}, err
	}
	return measurementFrom(data), nil
}

func (s *Session) write(w waiter, command byte) error {
	if s.bus == nil {
		return ErrDestroyed
	}
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.write(s.bus, s.Address, []byte{command}); err != nil {
		return &BusError{Op: "write", Address: s.Address, Err: err}
	}
	return nil
}

func (s *Session) read(w waiter) (frame, error) {
	if s.bus == nil {
		return frame{}, ErrDestroyed
	}
	if err := w.ready(); err != nil {
		return frame{}, err
	}
	if err := w.read(s.bus, s.Address, s.buf[:]); err != nil {
		return frame{}, &BusError{Op: "read", Address: s.Address, Err: err}
	}
	return frame(s.buf), nil
}

// waiter performs the steps of an exchange that either block or suspend.
type waiter interface {
	ready() error
	write(bus Bus, addr uint16, w []byte) error
	read(bus Bus, addr uint16, r []byte) error
	delayMicroseconds(us uint32) error
	delayMilliseconds(ms uint32) error
}

type blocking struct {
	delay Delay
}

func (blocking) ready() error {
	return nil
}

func (blocking) write(bus Bus, addr uint16, w []byte) error {
	return bus.Write(addr, w)
}

func (blocking) read(bus Bus, addr uint16, r []byte) error {
	return bus.Read(addr, r)
}

func (b blocking) delayMicroseconds(us uint32) error {
	b.delay.DelayMicroseconds(us)
	return nil
}

func (b blocking) delayMilliseconds(ms uint32) error {
	b.delay.DelayMilliseconds(ms)
	return nil
}
