package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RenderOptions mirrors the renderer's configuration surface on the wire.
// Nil targets mean "use the defaults".
type RenderOptions struct {
	Currency          string   `json:"currency,omitempty"`
	CostOfSalesTarget *float64 `json:"cost_of_sales_target,omitempty"`
	PayrollTarget     *float64 `json:"payroll_target,omitempty"`
	ProfitTarget      *float64 `json:"profit_target,omitempty"`
}

// RenderJobMessage asks the worker to render one report. The raw document is
// embedded whole: the worker has no access to the accounting API and must not
// need one.
type RenderJobMessage struct {
	JobID     string          `json:"job_id"`
	Report    json.RawMessage `json:"report"`
	Options   RenderOptions   `json:"options"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewRenderJobMessage creates a render job with a fresh job ID.
func NewRenderJobMessage(rawReport json.RawMessage, opts RenderOptions) *RenderJobMessage {
	return &RenderJobMessage{
		JobID:     uuid.NewString(),
		Report:    rawReport,
		Options:   opts,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *RenderJobMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RenderJobMessageFromJSON creates a message from JSON bytes
func RenderJobMessageFromJSON(data []byte) (*RenderJobMessage, error) {
	var msg RenderJobMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
