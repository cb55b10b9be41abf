package mqtt

import (
	"time"

	"github.com/pkg/errors"
)

// Config configures a Client.
type Config struct {
	// Broker is the broker URL, e.g. tcp://localhost:1883.
	Broker string

	// ClientID identifies the client to the broker. It is also the address
	// advertisements published by the client are sent from.
	ClientID string

	// Topic carries advertisements, one JSON message each.
	Topic string

	QoS byte

	// Timeout bounds publish, subscribe and unsubscribe round trips.
	Timeout time.Duration
}

// DefaultConfig returns a Config for a broker on localhost.
func DefaultConfig() Config {
	return Config{
		Broker:   "tcp://localhost:1883",
		ClientID: "adtool",
		Topic:    "ble/adv",
		QoS:      1,
		Timeout:  5 * time.Second,
	}
}

// Validate reports the first missing or invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Broker == "":
		return errors.New("mqtt: broker is required")
	case c.ClientID == "":
		return errors.New("mqtt: client id is required")
	case c.Topic == "":
		return errors.New("mqtt: topic is required")
	case c.QoS > 2:
		return errors.Errorf("mqtt: invalid qos %d", c.QoS)
	case c.Timeout <= 0:
		return errors.Errorf("mqtt: invalid timeout %s", c.Timeout)
	}
	return nil
}
