package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("requires an access token outside mock mode", func(t *testing.T) {
		_, err := NewMercadoPagoGateway("", false, nil)
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", true, nil)
		if err != nil || g == nil {
			t.Fatalf("expected gateway, got %v", err)
		}
	})
}

func TestMercadoPagoGateway_MockPayment(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true, nil)
	fixed := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":120.5,"external_reference":"q-1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "approved" || id == "" {
		t.Fatalf("unexpected result id=%q status=%q", id, status)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("response is not json: %v", err)
	}
	if body["external_reference"] != "q-1" || body["status_detail"] != "accredited" {
		t.Fatalf("unexpected response body: %v", body)
	}
	if body["date_created"] != fixed.Format(time.RFC3339Nano) {
		t.Fatalf("expected date_created stamped, got %v", body["date_created"])
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
