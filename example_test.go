package sensironsht4x_test

import (
	"fmt"
	"log"

	"github.com/go-sensors/sensironsht4x"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	session := sensironsht4x.NewSession(sensironsht4x.NewPeriphBus(b), sensironsht4x.DefaultConfig())

	serial, err := session.SerialNumber()
	if err != nil {
		log.Fatal(err)
	}

	measurement, err := session.Measure(sensironsht4x.SleepDelay{})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%v: %.2f°C %.2f%%RH\n", serial, measurement.Celsius(), measurement.Humidity())
}
