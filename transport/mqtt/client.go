// Package mqtt carries advertisements over an MQTT broker. A Client is both
// a ble.Scanner, fed by gateways that publish what their radios receive, and
// a ble.Advertiser that publishes built advertising data.
package mqtt

import (
	"context"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	ble "github.com/HubbellCorp/SweetBlue-sub005"
)

// ErrStopped is returned by a Client that has been closed.
var ErrStopped = errors.New("mqtt: client stopped")

// An Option is a configuration function, which configures the client.
type Option func(*Client) error

// OptLogger sets the logger of the client.
func OptLogger(l *logrus.Entry) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// Client is a ble.Scanner and ble.Advertiser backed by an MQTT broker.
type Client struct {
	client    paho.Client
	cfg       Config
	log       *logrus.Entry
	mu        sync.RWMutex
	connected bool

	stopCh   chan struct{}
	stopOnce sync.Once
}

// New returns a Client for cfg. It does not connect.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Client{
		cfg:    cfg,
		log:    logrus.WithField("component", "mqtt"),
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, errors.Wrap(err, "can't apply option")
		}
	}

	po := paho.NewClientOptions()
	po.AddBroker(cfg.Broker)
	po.SetClientID(cfg.ClientID)
	po.SetCleanSession(true)
	po.SetAutoReconnect(true)
	po.SetConnectRetry(true)
	po.SetConnectRetryInterval(5 * time.Second)
	po.SetMaxReconnectInterval(60 * time.Second)
	po.SetKeepAlive(30 * time.Second)
	po.SetPingTimeout(10 * time.Second)
	po.SetOnConnectHandler(func(_ paho.Client) {
		c.setConnected(true)
		c.log.WithField("broker", cfg.Broker).Info("connected")
	})
	po.SetConnectionLostHandler(func(_ paho.Client, err error) {
		c.setConnected(false)
		c.log.WithError(err).Warn("connection lost")
	})

	c.client = paho.NewClient(po)
	return c, nil
}

// Connect connects to the broker. It waits for the first connection until
// ctx is done or the client is closed.
func (c *Client) Connect(ctx context.Context) error {
	select {
	case <-c.stopCh:
		return ErrStopped
	default:
	}
	if c.IsConnected() {
		return nil
	}
	if err := c.wait(ctx, c.client.Connect(), 0); err != nil {
		c.client.Disconnect(0)
		return errors.Wrap(err, "can't connect")
	}
	c.setConnected(true)
	return nil
}

// Scan subscribes to the configured topic and calls h for each
// advertisement received, until ctx is done. Malformed messages are logged
// and dropped. Scan returns ctx.Err() once it has unsubscribed.
func (c *Client) Scan(ctx context.Context, h ble.AdvHandler) error {
	if !c.IsConnected() {
		return errors.New("mqtt: not connected")
	}
	topic := c.cfg.Topic
	tok := c.client.Subscribe(topic, c.cfg.QoS, func(_ paho.Client, m paho.Message) {
		a, err := Decode(m.Payload())
		if err != nil {
			c.log.WithFields(logrus.Fields{
				"topic": m.Topic(),
				"size":  len(m.Payload()),
			}).WithError(err).Warn("dropping malformed message")
			return
		}
		h(a)
	})
	if err := c.wait(ctx, tok, c.cfg.Timeout); err != nil {
		return errors.Wrapf(err, "can't subscribe to %s", topic)
	}
	c.log.WithFields(logrus.Fields{"topic": topic, "qos": c.cfg.QoS}).Debug("scanning")

	select {
	case <-ctx.Done():
	case <-c.stopCh:
	}
	if c.IsConnected() {
		c.client.Unsubscribe(topic).WaitTimeout(c.cfg.Timeout)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return ErrStopped
}

// Advertise publishes data on the configured topic, sent from the client id.
func (c *Client) Advertise(ctx context.Context, data []byte) error {
	if !c.IsConnected() {
		return errors.New("mqtt: not connected")
	}
	b, err := Encode(ble.Advertisement{
		Addr:      ble.NewAddr(c.cfg.ClientID),
		EventType: ble.AdvInd,
		Data:      data,
		Timestamp: time.Now(),
	})
	if err != nil {
		return err
	}
	if err := c.wait(ctx, c.client.Publish(c.cfg.Topic, c.cfg.QoS, false, b), c.cfg.Timeout); err != nil {
		return errors.Wrapf(err, "can't publish to %s", c.cfg.Topic)
	}
	c.log.WithFields(logrus.Fields{"topic": c.cfg.Topic, "size": len(data)}).Debug("advertised")
	return nil
}

// IsConnected returns whether the client is connected.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	connected := c.connected
	c.mu.RUnlock()
	return connected && c.client.IsConnected()
}

// Close disconnects from the broker. It is safe to call more than once.
// A closed client can't be connected again.
func (c *Client) Close() error {
	c.stopOnce.Do(func() { close(c.stopCh) })
	c.client.Disconnect(250)
	c.setConnected(false)
	c.log.Info("disconnected")
	return nil
}

func (c *Client) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}

// wait waits for tok to complete, for ctx to be done, for the client to be
// closed, or for tmo to pass. A zero tmo waits without a time limit.
func (c *Client) wait(ctx context.Context, tok paho.Token, tmo time.Duration) error {
	const poll = 200 * time.Millisecond
	var deadline <-chan time.Time
	if tmo > 0 {
		t := time.NewTimer(tmo)
		defer t.Stop()
		deadline = t.C
	}
	for {
		if tok.WaitTimeout(poll) {
			return tok.Error()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.stopCh:
			return ErrStopped
		case <-deadline:
			return errors.Errorf("timed out after %s", tmo)
		default:
		}
	}
}
