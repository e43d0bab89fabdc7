package payments

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	_, err := NewMercadoPagoGateway("", false)
	require.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)

	g, err := NewMercadoPagoGateway("", true)
	require.NoError(t, err)
	assert.True(t, g.mockMode)
}

func TestMercadoPagoGateway_MockPayment(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := &MercadoPagoGateway{mockMode: true, now: func() time.Time { return fixed }}

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":166,"external_reference":"est-1:cov-1"}`))
	require.NoError(t, err)
	assert.Equal(t, "approved", status)
	assert.NotEmpty(t, id)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, id, resp["id"])
	assert.Equal(t, "accredited", resp["status_detail"])
	assert.Equal(t, "est-1:cov-1", resp["external_reference"])
	assert.Equal(t, fixed.Format(time.RFC3339Nano), resp["date_approved"])
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	require.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}
