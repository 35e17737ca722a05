package sensironsht4x

import (
	"context"
)

// SerialNumberContext is SerialNumber, suspending on ctx instead of blocking.
//
// If ctx is done part way through, the exchange is abandoned and the sensor
// may still hold a response; the next read can return stale data.
func (s *Session) SerialNumberContext(ctx context.Context) (SerialNumber, error) {
	return s.serialNumber(suspending{ctx: ctx})
}

// SoftResetContext is SoftReset, suspending on ctx instead of blocking
func (s *Session) SoftResetContext(ctx context.Context, delay ContextDelay) error {
	return s.softReset(suspending{ctx: ctx, delay: delay})
}

// MeasureContext is Measure, suspending on ctx instead of blocking
func (s *Session) MeasureContext(ctx context.Context, delay ContextDelay) (Measurement, error) {
	return s.MeasureWithSettingsContext(ctx, delay, s.Config.ReadingMode, s.Config.DelayMode)
}

// MeasureWithSettingsContext is MeasureWithSettings, suspending on ctx instead of blocking.
//
// The write, the delay and the read happen strictly in order. Cancelling ctx
// stops the call at the next step and returns ctx.Err().
func (s *Session) MeasureWithSettingsContext(ctx context.Context, delay ContextDelay, mode ReadingMode, delayMode DelayMode) (Measurement, error) {
	return s.measure(suspending{ctx: ctx, delay: delay}, mode, delayMode)
}

type suspending struct {
	ctx   context.Context
	delay ContextDelay
}

func (s suspending) ready() error {
	return s.ctx.Err()
}

func (s suspending) write(bus Bus, addr uint16, w []byte) error {
	if cb, ok := bus.(ContextBus); ok {
		return cb.WriteContext(s.ctx, addr, w)
	}
	return bus.Write(addr, w)
}

func (s suspending) read(bus Bus, addr uint16, r []byte) error {
	if cb, ok := bus.(ContextBus); ok {
		return cb.ReadContext(s.ctx, addr, r)
	}
	return bus.Read(addr, r)
}

func (s suspending) delayMicroseconds(us uint32) error {
	return s.delay.DelayMicroseconds(s.ctx, us)
}

func (s suspending) delayMilliseconds(ms uint32) error {
	return s.delay.DelayMilliseconds(s.ctx, ms)
}
