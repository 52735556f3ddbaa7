package auth

import (
	"crypto/rand"
	"math/big"
	"time"
)

// ResetTokenTTL bounds the password-reset window.
const ResetTokenTTL = time.Hour

const (
	resetTokenLength  = 26
	resetTokenCharset = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// GenerateResetToken returns an unguessable one-time token. crypto/rand,
// not math/rand: the token is a credential.
func GenerateResetToken() (string, error) {
	buf := make([]byte, resetTokenLength)
	max := big.NewInt(int64(len(resetTokenCharset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = resetTokenCharset[n.Int64()]
	}
	return string(buf), nil
}
