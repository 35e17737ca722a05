package sensironsht4x

import (
	"context"
	"sync"
	"time"

	coreio "github.com/go-sensors/core/io"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Sensor represents a configured Sensiron SHT4x temperature and humidity sensor
// that is measured periodically
type Sensor struct {
	measurements     chan *Measurement
	portFactory      coreio.PortFactory
	reconnectTimeout time.Duration
	measureInterval  time.Duration
	errorHandlerFunc ShouldTerminate
	config           Config
	commands         chan interface{}

	mu     sync.Mutex
	serial SerialNumber
}

// Option is a configured option that may be applied to a Sensor
type Option struct {
	apply func(*Sensor)
}

// NewSensor creates a Sensor with optional configuration
func NewSensor(portFactory coreio.PortFactory, options ...*Option) *Sensor {
	measurements := make(chan *Measurement)
	commands := make(chan interface{})
	s := &Sensor{
		measurements:     measurements,
		portFactory:      portFactory,
		reconnectTimeout: DefaultReconnectTimeout,
		measureInterval:  DefaultMeasureInterval,
		errorHandlerFunc: nil,
		config:           DefaultConfig(),
		commands:         commands,
	}
	for _, o := range options {
		o.apply(s)
	}
	return s
}

// WithReconnectTimeout specifies the duration to wait before reconnecting after a recoverable error
func WithReconnectTimeout(timeout time.Duration) *Option {
	return &Option{
		apply: func(s *Sensor) {
			s.reconnectTimeout = timeout
		},
	}
}

// ReconnectTimeout is the duration to wait before reconnecting after a recoverable error
func (s *Sensor) ReconnectTimeout() time.Duration {
	return s.reconnectTimeout
}

// WithMeasureInterval specifies the duration between measurements
func WithMeasureInterval(interval time.Duration) *Option {
	return &Option{
		apply: func(s *Sensor) {
			s.measureInterval = interval
		},
	}
}

// MeasureInterval is the duration between measurements
func (s *Sensor) MeasureInterval() time.Duration {
	return s.measureInterval
}

// WithConfig specifies the reading mode, delay mode and CRC validation used for each measurement
func WithConfig(config Config) *Option {
	return &Option{
		apply: func(s *Sensor) {
			s.config = config
		},
	}
}

// Config is the configuration used for each measurement
func (s *Sensor) Config() Config {
	return s.config
}

// ShouldTerminate is a function that returns a result indicating whether the Sensor should terminate after a recoverable error
type ShouldTerminate func(error) bool

// WithRecoverableErrorHandler registers a function that will be called when a recoverable error occurs
func WithRecoverableErrorHandler(f ShouldTerminate) *Option {
	return &Option{
		apply: func(s *Sensor) {
			s.errorHandlerFunc = f
		},
	}
}

// RecoverableErrorHandler a function that will be called when a recoverable error occurs
func (s *Sensor) RecoverableErrorHandler() ShouldTerminate {
	return s.errorHandlerFunc
}

// SerialNumber is the serial number read when the sensor was last connected, or zero
func (s *Sensor) SerialNumber() SerialNumber {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serial
}

const (
	DefaultReconnectTimeout time.Duration = 5 * time.Second
	DefaultMeasureInterval  time.Duration = 1 * time.Second
)

// Run begins reading from the sensor and blocks until either an error occurs or the context is completed
func (s *Sensor) Run(ctx context.Context) error {
	defer close(s.measurements)
	defer close(s.commands)
	for {
		port, err := s.portFactory.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open port")
		}

		session := NewSession(NewPortBus(port), s.config)

		group, innerCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			<-innerCtx.Done()
			return port.Close()
		})
		group.Go(func() error {
			err := s.initialize(innerCtx, session)
			if err != nil {
				if innerCtx.Err() != nil {
					return nil
				}
				return errors.Wrap(err, "failed to initialize sensor")
			}

			group.Go(handleCommands(innerCtx, s.commands, s.measurements, session))
			group.Go(requestMeasurementRepeatedly(innerCtx, s.commands, s.measureInterval))
			return nil
		})

		err = group.Wait()
		if err != nil {
			lg.Errorf("sensor stopped: %v", err)
		}
		if s.errorHandlerFunc != nil {
			if s.errorHandlerFunc(err) {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.reconnectTimeout):
		}
	}
}

func (s *Sensor) initialize(ctx context.Context, session *Session) error {
	err := session.SoftResetContext(ctx, TimerDelay{})
	if err != nil {
		return errors.Wrap(err, "failed to reset")
	}

	serial, err := session.SerialNumberContext(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read serial number")
	}
	lg.Infof("connected to sensor %v", serial)

	s.mu.Lock()
	s.serial = serial
	s.mu.Unlock()
	return nil
}

// Measurements returns a channel of measurements as they become available from the sensor
func (s *Sensor) Measurements() <-chan *Measurement {
	return s.measurements
}

type requestHeater struct {
	power    HeaterPower
	duration HeaterDuration
}

// ActivateHeater pulses the heater once and publishes the measurement taken after the pulse.
//
// The heater is designed for a maximum duty cycle of 10%.
func (s *Sensor) ActivateHeater(ctx context.Context, power HeaterPower, duration HeaterDuration) error {
	select {
	case <-ctx.Done():
	case s.commands <- &requestHeater{power: power, duration: duration}:
	}
	return nil
}

type requestMeasurement struct{}

func requestMeasurementRepeatedly(
	ctx context.Context,
	commands chan interface{},
	interval time.Duration) func() error {
	request := &requestMeasurement{}
	return func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(interval):
				select {
				case <-ctx.Done():
					return nil
				case commands <- request:
				}
			}
		}
	}
}

func handleCommands(
	ctx context.Context,
	commands chan interface{},
	measurements chan *Measurement,
	session *Session) func() error {
	return func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case c := <-commands:
				var (
					measurement Measurement
					err         error
				)
				switch command := c.(type) {
				case *requestHeater:
					mode := HighPrecisionWithHeater(command.power, command.duration)
					measurement, err = session.MeasureWithSettingsContext(ctx, TimerDelay{}, mode, session.Config.DelayMode)
					if err != nil {
						if ctx.Err() != nil {
							return nil
						}
						return errors.Wrap(err, "failed to measure with heater")
					}
				case *requestMeasurement:
					measurement, err = session.MeasureContext(ctx, TimerDelay{})
					if err != nil {
						if ctx.Err() != nil {
							return nil
						}
						return errors.Wrap(err, "failed to measure")
					}
				default:
					continue
				}
				lg.Debugf("measured %v", measurement)

				select {
				case <-ctx.Done():
					return nil
				case measurements <- &measurement:
				}
			}
		}
	}
}
