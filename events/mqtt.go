package events

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTPublisher forwards task events to an MQTT broker under
// <prefix>/<userId>/<type>.
type MQTTPublisher struct {
	client mqtt.Client
	prefix string
}

var topicReplacer = strings.NewReplacer("/", "_", "+", "_", "#", "_")

// NewMQTTPublisher kết nối tới broker từ MQTT_URL, ví dụ
// tcp://localhost:1883/taskflow. The URL path is the topic prefix.
func NewMQTTPublisher(rawURL, clientID string) (*MQTTPublisher, error) {
	uri, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid MQTT_URL: %w", err)
	}
	if uri.Host == "" {
		return nil, fmt.Errorf("invalid MQTT_URL %q: missing host", rawURL)
	}

	client := mqtt.NewClient(createClientOptions(clientID, uri))
	token := client.Connect()
	if !token.WaitTimeout(5 * time.Second) {
		return nil, fmt.Errorf("timed out connecting to MQTT broker %s", uri.Host)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("cannot connect to MQTT broker: %w", err)
	}
	log.Printf("[events] Connected to MQTT broker %s", uri.Host)

	return newMQTTPublisher(client, topicPrefix(uri)), nil
}

func newMQTTPublisher(client mqtt.Client, prefix string) *MQTTPublisher {
	return &MQTTPublisher{client: client, prefix: prefix}
}

func topicPrefix(uri *url.URL) string {
	prefix := strings.Trim(uri.Path, "/")
	if prefix == "" {
		prefix = "taskflow"
	}
	return prefix
}

func createClientOptions(clientID string, uri *url.URL) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", uri.Host))
	if uri.User != nil {
		opts.SetUsername(uri.User.Username())
		password, _ := uri.User.Password()
		opts.SetPassword(password)
	}
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	return opts
}

// Topic returns the topic an event is published on.
func (p *MQTTPublisher) Topic(ev TaskEvent) string {
	return fmt.Sprintf("%s/%s/%s", p.prefix, topicReplacer.Replace(ev.UserID), ev.Type)
}

// Publish sends ev at QoS 0 without waiting for the broker.
func (p *MQTTPublisher) Publish(ev TaskEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[events] Error encoding event: %v", err)
		return
	}
	topic := p.Topic(ev)
	token := p.client.Publish(topic, 0, false, payload)
	go func() {
		if token.WaitTimeout(5*time.Second) && token.Error() != nil {
			log.Printf("[events] Error publishing to %s: %v", topic, token.Error())
		}
	}()
}

// Close ngắt kết nối MQTT
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
