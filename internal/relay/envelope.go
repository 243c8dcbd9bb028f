// Package relay republishes console events on a NATS message bus so other
// services can react to dashboard operations. It is optional; the console
// runs standalone without a relay configured.
package relay

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Envelope is the standardised wrapper for all relayed messages.
type Envelope struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Data          json.RawMessage `json:"data"`
}

// NewEnvelope creates an envelope with a generated ID and current timestamp.
func NewEnvelope(eventType, source string, data any) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    source,
		Timestamp: time.Now().UTC(),
		Data:      raw,
	}, nil
}

// Marshal serialises the envelope to JSON bytes.
func (e Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// UnmarshalEnvelope deserialises an envelope from JSON bytes.
func UnmarshalEnvelope(data []byte) (Envelope, error) {
	var e Envelope
	err := json.Unmarshal(data, &e)
	return e, err
}
