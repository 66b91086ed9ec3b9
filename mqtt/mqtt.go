// mqtt.go - Publishes booking events to an MQTT broker

package mqtt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang" // MQTT client library
)

// Topics published under the configured prefix.
const (
	TopicPurchased = "purchased"
	TopicRemoved   = "removed"
	TopicDeleted   = "deleted"
	TopicSignup    = "signup"
)

// Publisher sends an event payload to a topic.
type Publisher interface {
	Publish(topic string, payload interface{}) error
}

// Event is the JSON body of every published message.
type Event struct {
	UserID uint      `json:"user_id"`
	TourID uint      `json:"tour_id,omitempty"`
	At     time.Time `json:"at"`
}

// Client is a Publisher over a connected paho client.
type Client struct {
	client  paho.Client
	prefix  string
	timeout time.Duration
}

// DefaultPublishTimeout bounds how long Publish waits for the broker's ack.
// Publish runs inside request handlers, so it is kept short.
const DefaultPublishTimeout = 500 * time.Millisecond

// Connect dials the broker and returns a ready client. Publish waits at most
// publishTimeout for each ack; zero means DefaultPublishTimeout.
func Connect(broker, clientID, prefix string, publishTimeout time.Duration) (*Client, error) {
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(15 * time.Second) {
		return nil, fmt.Errorf("connect to %s: timed out", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", broker, err)
	}
	return newClient(client, prefix, publishTimeout), nil
}

func newClient(client paho.Client, prefix string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &Client{client: client, prefix: strings.Trim(prefix, "/"), timeout: timeout}
}

// Publish sends payload as JSON (strings and bytes are sent as-is) with QoS 1.
func (c *Client) Publish(topic string, payload interface{}) error {
	body, err := encode(payload)
	if err != nil {
		return err
	}
	token := c.client.Publish(Topic(c.prefix, topic), 1, false, body)
	if !token.WaitTimeout(c.timeout) {
		return fmt.Errorf("publish %s: no ack within %s", topic, c.timeout)
	}
	return token.Error()
}

// Close disconnects from the broker.
func (c *Client) Close() {
	c.client.Disconnect(250)
}

// Topic joins prefix and name with a slash.
func Topic(prefix, name string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

func encode(payload interface{}) ([]byte, error) {
	switch v := payload.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		body, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		return body, nil
	}
}

// Nop is a Publisher that drops every event. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(string, interface{}) error { return nil }
