package bambu

import (
	"context"
	"crypto/tls"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

// ReportHandler receives raw report payloads.
type ReportHandler func(payload []byte)

// Client is an MQTT connection to a single printer.
type Client struct {
	client   mqtt.Client
	target   Target
	timeout  time.Duration
	logger   *zap.Logger
	sequence atomic.Int64

	mu      sync.Mutex
	handler ReportHandler
}

// NewClient creates a client for the given printer. It does not connect.
func NewClient(cfg Config, target Target, logger *zap.Logger) *Client {
	timeout := cfg.ConnectTimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	port := cfg.Port
	if port <= 0 {
		port = 8883
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("ssl://%s:%d", target.Host, port))
	opts.SetClientID(fmt.Sprintf("%s-%s-%d", cfg.ClientIDPrefix, target.Serial, time.Now().UnixNano()))
	opts.SetUsername(cfg.Username)
	opts.SetPassword(target.AccessCode)
	opts.SetTLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureTLS})
	opts.SetConnectTimeout(time.Duration(timeout) * time.Second)
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)

	log := logger.With(zap.String("printer", target.Name), zap.String("serial", target.Serial))
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Warn("Printer connection lost", zap.Error(err))
	})
	opts.SetReconnectingHandler(func(mqtt.Client, *mqtt.ClientOptions) {
		log.Info("Reconnecting to printer")
	})

	c := &Client{
		target:  target,
		timeout: time.Duration(timeout) * time.Second,
		logger:  log,
	}
	// Clean sessions lose their subscriptions on every reconnect.
	opts.SetOnConnectHandler(c.onConnect)
	c.client = mqtt.NewClient(opts)
	return c
}

// Connect opens the MQTT connection.
func (c *Client) Connect(ctx context.Context) error {
	token := c.client.Connect()
	if err := waitToken(ctx, token, c.timeout); err != nil {
		return fmt.Errorf("failed to connect to printer %s: %w", c.target.Name, err)
	}
	c.logger.Info("Connected to printer")
	return nil
}

// SubscribeReports delivers every report of the printer to handler.
// Handlers run on the MQTT client's goroutine and must not block.
// The subscription is restored after every automatic reconnect.
func (c *Client) SubscribeReports(ctx context.Context, handler ReportHandler) error {
	c.mu.Lock()
	c.handler = handler
	c.mu.Unlock()

	topic := ReportTopic(c.target.Serial)
	token := c.client.Subscribe(topic, 0, deliver(handler))
	if err := waitToken(ctx, token, c.timeout); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}
	return nil
}

// onConnect runs after every successful connect, including reconnects.
func (c *Client) onConnect(client mqtt.Client) {
	c.mu.Lock()
	handler := c.handler
	c.mu.Unlock()
	if handler == nil {
		return
	}

	topic := ReportTopic(c.target.Serial)
	token := client.Subscribe(topic, 0, deliver(handler))
	if !token.WaitTimeout(c.timeout) {
		c.logger.Warn("Timed out restoring report subscription", zap.String("topic", topic))
		return
	}
	if err := token.Error(); err != nil {
		c.logger.Warn("Failed to restore report subscription", zap.String("topic", topic), zap.Error(err))
		return
	}
	c.logger.Info("Report subscription restored")
}

func deliver(handler ReportHandler) mqtt.MessageHandler {
	return func(_ mqtt.Client, msg mqtt.Message) {
		handler(msg.Payload())
	}
}

// RequestPushAll asks the printer to publish a full status report.
func (c *Client) RequestPushAll(ctx context.Context) error {
	seq := int(c.sequence.Add(1))
	token := c.client.Publish(RequestTopic(c.target.Serial), 0, false, PushAllPayload(seq))
	if err := waitToken(ctx, token, c.timeout); err != nil {
		return fmt.Errorf("failed to request pushall from %s: %w", c.target.Name, err)
	}
	return nil
}

// IsConnected reports whether the connection is currently up.
func (c *Client) IsConnected() bool {
	return c.client.IsConnectionOpen()
}

// Close disconnects from the printer.
func (c *Client) Close() {
	c.client.Disconnect(250)
}

func waitToken(ctx context.Context, token mqtt.Token, timeout time.Duration) error {
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(timeout):
		return fmt.Errorf("timed out after %s", timeout)
	}
	return token.Error()
}
