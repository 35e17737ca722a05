package sensironsht4x

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_bus.go -package=mocks . Bus,ContextBus,Delay,ContextDelay

// Bus is an I2C bus to which the sensor is attached.
//
// Each call must be a complete transaction terminated by a STOP condition.
// The sensor does not accept a repeated START between a command and the read
// of its response.
type Bus interface {
	Write(addr uint16, w []byte) error
	Read(addr uint16, r []byte) error
}

// ContextBus is a Bus whose transactions can suspend until the context is done.
// The context variants of Session operations use it when the bus provides it.
type ContextBus interface {
	Bus
	WriteContext(ctx context.Context, addr uint16, w []byte) error
	ReadContext(ctx context.Context, addr uint16, r []byte) error
}

// Delay blocks the caller for the given duration
type Delay interface {
	DelayMicroseconds(us uint32)
	DelayMilliseconds(ms uint32)
}

// ContextDelay suspends the caller for the given duration, returning early
// with the context's error if it is done first
type ContextDelay interface {
	DelayMicroseconds(ctx context.Context, us uint32) error
	DelayMilliseconds(ctx context.Context, ms uint32) error
}

// SleepDelay is a Delay backed by time.Sleep
type SleepDelay struct{}

func (SleepDelay) DelayMicroseconds(us uint32) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}

func (SleepDelay) DelayMilliseconds(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// TimerDelay is a ContextDelay backed by a timer
type TimerDelay struct{}

func (TimerDelay) DelayMicroseconds(ctx context.Context, us uint32) error {
	return wait(ctx, time.Duration(us)*time.Microsecond)
}

func (TimerDelay) DelayMilliseconds(ctx context.Context, ms uint32) error {
	return wait(ctx, time.Duration(ms)*time.Millisecond)
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	return nil
}
