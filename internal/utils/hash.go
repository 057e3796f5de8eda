package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds HMAC-SHA256 instances keyed with the APP_HASH_KEY value.
// InitHasherPool must run before Hash.
var hasherPool sync.Pool

// InitHasherPool (re)keys the pool used by Hash.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash signs a request body with the pooled key.
func Hash(body []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()
	h.Write(body)
	sum := h.Sum(nil)
	hasherPool.Put(h)
	return sum
}

// HashString returns the hex HMAC-SHA256 of data under hashKey, the value
// carried in the HashSHA256 header.
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(sign([]byte(data), hashKey))
}

// VerifyHash reports whether signature is the hex HMAC of body under hashKey.
// The comparison is constant time.
func VerifyHash(body []byte, signature, hashKey string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, sign(body, hashKey))
}

func sign(data []byte, hashKey string) []byte {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write(data)
	return mac.Sum(nil)
}
