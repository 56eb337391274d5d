package services

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// SessionRegistry holds the set of live admin session tokens. Tokens only
// exist in process memory, so a restart logs every admin out.
type SessionRegistry struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{tokens: make(map[string]struct{})}
}

// Issue mints a new 256-bit random token, hex-encoded, and registers it.
func (r *SessionRegistry) Issue() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)

	r.mu.Lock()
	r.tokens[token] = struct{}{}
	r.mu.Unlock()
	return token, nil
}

// Revoke removes token from the registry. Revoking an unknown token is a no-op.
func (r *SessionRegistry) Revoke(token string) {
	r.mu.Lock()
	delete(r.tokens, token)
	r.mu.Unlock()
}

// Valid reports whether token belongs to a live session.
func (r *SessionRegistry) Valid(token string) bool {
	r.mu.Lock()
	_, ok := r.tokens[token]
	r.mu.Unlock()
	return ok
}
