package services

import (
	"encoding/json"
	"log"

	"github.com/InternHub/internhub-backend/internal/interfaces"
)

// EventEnvelope is what actually goes onto the wire: the event key repeated
// in the body so consumers can dispatch without access to the message key.
type EventEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// publishEvent is fire-and-forget: a broker outage never fails the request
// that triggered the event.
func publishEvent(producer interfaces.ProducerHandler, key string, payload any) {
	if producer == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("marshal %s event error: %v", key, err)
		return
	}
	value, err := json.Marshal(EventEnvelope{Event: key, Data: data})
	if err != nil {
		log.Printf("marshal %s envelope error: %v", key, err)
		return
	}

	if err := producer.PublishMessage([]byte(key), value); err != nil {
		log.Printf("publish %s event error: %v", key, err)
	}
}
