package devserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignPayment produces the gateway-style signature over order id and payment
// id. The development widget uses the same routine to fabricate callbacks
// that verify.
func SignPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func verifySignature(secret, orderID, paymentID, signature string) bool {
	expected := SignPayment(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
