package payos

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

const SignatureHeader = "x-payos-signature"

type Webhook struct {
	OrderCode int64
	// Amount is zero unless HasAmount is set; minimal callbacks carry only
	// orderCode and status.
	Amount           decimal.Decimal
	HasAmount        bool
	Signed           bool
	GatewayReference string
	Description      string
	Outcome          Outcome
}

// ParseWebhook authenticates a callback body and extracts the payment outcome.
// Both the nested {"data":{...}} shape and a flat payload are accepted; the
// signature comes from the header when present, otherwise from the body.
// Unsigned callbacks are rejected unless the client allows them.
func (c *Client) ParseWebhook(body []byte, headerSignature string) (*Webhook, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	signed, nested := payload["data"].(map[string]any)
	if !nested {
		signed = make(map[string]any, len(payload))
		for k, v := range payload {
			if k != "signature" {
				signed[k] = v
			}
		}
	}

	signature := headerSignature
	if signature == "" {
		signature, _ = payload["signature"].(string)
	}
	switch {
	case signature == "" && c.cfg.AllowUnsigned:
	case !Verify(c.cfg.ChecksumKey, signed, signature):
		return nil, ErrInvalidSignature
	}

	orderCode, err := int64Field(signed, "orderCode")
	if err != nil {
		return nil, err
	}

	wh := &Webhook{
		OrderCode:   orderCode,
		Signed:      signature != "",
		Description: stringify(signed["description"]),
	}
	if raw := stringify(signed["amount"]); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: amount: %v", ErrMalformedPayload, err)
		}
		wh.Amount = amount
		wh.HasAmount = true
	}
	if ref := stringify(signed["reference"]); ref != "" {
		wh.GatewayReference = ref
	} else {
		wh.GatewayReference = stringify(signed["paymentLinkId"])
	}

	if status := stringify(signed["status"]); status != "" {
		wh.Outcome = statusOutcome(status)
		return wh, nil
	}
	success, _ := payload["success"].(bool)
	code := stringify(payload["code"])
	if code == "" {
		code = stringify(signed["code"])
	}
	if success || code == codeSuccess {
		wh.Outcome = OutcomePaid
	} else {
		wh.Outcome = OutcomeFailed
	}
	return wh, nil
}

func int64Field(data map[string]any, key string) (int64, error) {
	raw := stringify(data[key])
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q", ErrMalformedPayload, key, raw)
	}
	return v, nil
}
