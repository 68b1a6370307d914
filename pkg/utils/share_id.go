package utils

import (
	"crypto/rand"
	"fmt"
)

const shareIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

const ShareIDLength = 10

// NewShareID returns a short url-safe random token. Uniqueness is assumed at
// this scale, not guaranteed; the numeric row id stays the primary key.
func NewShareID() (string, error) {
	buf := make([]byte, ShareIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate share id: %w", err)
	}
	for i, b := range buf {
		buf[i] = shareIDAlphabet[int(b)%len(shareIDAlphabet)]
	}
	return string(buf), nil
}
