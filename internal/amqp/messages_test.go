package amqp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderJobMessage_RoundTrip(t *testing.T) {
	target := 40.0
	rawReport := json.RawMessage(`{"Header":{"Currency":"USD"}}`)

	msg := NewRenderJobMessage(rawReport, RenderOptions{
		Currency:      "EUR",
		PayrollTarget: &target,
	})
	require.NotEmpty(t, msg.JobID)
	require.False(t, msg.Timestamp.IsZero())

	body, err := msg.ToJSON()
	require.NoError(t, err)

	decoded, err := RenderJobMessageFromJSON(body)
	require.NoError(t, err)

	assert.Equal(t, msg.JobID, decoded.JobID)
	assert.Equal(t, "EUR", decoded.Options.Currency)
	require.NotNil(t, decoded.Options.PayrollTarget)
	assert.Equal(t, 40.0, *decoded.Options.PayrollTarget)
	assert.Nil(t, decoded.Options.ProfitTarget)
	assert.JSONEq(t, string(rawReport), string(decoded.Report))
}

func TestRenderJobMessage_UniqueJobIDs(t *testing.T) {
	a := NewRenderJobMessage(nil, RenderOptions{})
	b := NewRenderJobMessage(nil, RenderOptions{})
	assert.NotEqual(t, a.JobID, b.JobID)
}

func TestRenderJobMessageFromJSON_Invalid(t *testing.T) {
	_, err := RenderJobMessageFromJSON([]byte("not json"))
	assert.Error(t, err)
}
