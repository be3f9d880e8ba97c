package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID создает короткий уникальный идентификатор сессии
// (16 hex-символов, без зависимости от uuid).
func GenerateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}
