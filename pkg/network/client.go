package network

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sony/gobreaker"

	"github.com/opd-ai/go-empire/pkg/logging"
)

// BridgeClient connects a headless observer (tools, bots, tests) to a
// running bridge. Connection attempts and sends run through a circuit
// breaker so a dead server degrades fast instead of hanging callers.
type BridgeClient struct {
	url     string
	logger  *logging.Logger
	breaker *gobreaker.CircuitBreaker

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewBridgeClient creates a client for the bridge at url
// (e.g. "ws://localhost:8080/ws").
func NewBridgeClient(url string, logger *logging.Logger) *BridgeClient {
	c := &BridgeClient{url: url, logger: logger}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "bridge-client",
		Timeout: 15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info(context.Background(), "circuit breaker state changed",
				"name", name, "from", from.String(), "to", to.String())
		},
	})
	return c
}

// Connect dials the bridge through the circuit breaker.
func (c *BridgeClient) Connect(ctx context.Context) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
		conn, _, err := dialer.DialContext(ctx, c.url, nil)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.conn = conn
		c.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("bridge connect: %w", err)
	}
	return nil
}

// SendIntent sends an intent envelope to the bridge.
func (c *BridgeClient) SendIntent(intentType string, payload interface{}) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return fmt.Errorf("bridge client not connected")
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal intent payload: %w", err)
	}
	data, err := json.Marshal(Envelope{Type: intentType, Payload: raw})
	if err != nil {
		return fmt.Errorf("marshal intent envelope: %w", err)
	}
	_, err = c.breaker.Execute(func() (interface{}, error) {
		return nil, conn.WriteMessage(websocket.TextMessage, data)
	})
	if err != nil {
		return fmt.Errorf("send intent: %w", err)
	}
	return nil
}

// Receive reads the next message from the bridge.
func (c *BridgeClient) Receive() (*Envelope, error) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return nil, fmt.Errorf("bridge client not connected")
	}
	_, data, err := conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("receive: %w", err)
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return &env, nil
}

// Close shuts the connection down.
func (c *BridgeClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}
