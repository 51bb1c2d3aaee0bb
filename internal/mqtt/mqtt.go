// Package mqtt publishes change events so public kiosk displays can refresh
// their calendar without polling. Publishing is fire-and-forget: a broker
// outage must never fail the admin request that triggered the event.
package mqtt

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

const updateTopic = "almanac/updated"

// Notifier announces admin mutations to connected displays.
type Notifier interface {
	NotifyChanged(resource, action string)
}

type event struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

type publisher struct {
	client mqtt.Client
}

// Connect dials the broker and returns a publishing Notifier.
func Connect(brokerURL, clientID string) (Notifier, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = func(mqtt.Client) {
		log.Info().Str("broker", brokerURL).Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Error().Err(err).Msg("MQTT connection lost")
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &publisher{client: client}, nil
}

func (p *publisher) NotifyChanged(resource, action string) {
	payload, err := json.Marshal(event{Resource: resource, Action: action})
	if err != nil {
		return
	}
	token := p.client.Publish(updateTopic, 1, false, payload)
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			log.Error().Err(err).Str("resource", resource).Msg("failed to publish update event")
		}
	}()
}

type noop struct{}

// Noop returns a Notifier that discards events, used when no broker is
// configured and in tests.
func Noop() Notifier {
	return noop{}
}

func (noop) NotifyChanged(string, string) {}
