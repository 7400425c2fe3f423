// Package signing builds the MD5 keyed-hash signatures required by the
// payment gateway and fulfillment provider wire protocols. Each provider
// specifies its own ordered concatenation of the shared secret and request
// fields; the functions here are pure and hold no state.
package signing

import (
	"crypto/md5"
	"encoding/hex"
)

// sum returns the lowercase hex MD5 digest of the concatenated parts
func sum(parts ...string) string {
	h := md5.New()
	for _, p := range parts {
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// PaymentCreate signs a payment-creation request:
// md5(key + uniqueCode + service + amount + validTime + note)
func PaymentCreate(apiKey, uniqueCode, service, amount, validTime, note string) string {
	return sum(apiKey, uniqueCode, service, amount, validTime, note)
}

// PaymentStatus signs a payment status query: md5(key + uniqueCode)
func PaymentStatus(apiKey, uniqueCode string) string {
	return sum(apiKey, uniqueCode)
}

// PaymentCallback is the signature the gateway attaches to webhook
// notifications; it uses the same formula as the status query.
func PaymentCallback(apiKey, uniqueCode string) string {
	return PaymentStatus(apiKey, uniqueCode)
}

// Fulfillment signs a delivery or delivery-status request:
// md5(username + apiKey + refID)
func Fulfillment(username, apiKey, refID string) string {
	return sum(username, apiKey, refID)
}
