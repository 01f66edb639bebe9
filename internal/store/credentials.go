package store

import (
	"crypto/rand"
	"encoding/hex"
)

type credentials struct {
	PasswordHash string `json:"password_hash"`
}

// SetOwnerPassword stores the bcrypt hash of the installation owner's
// password.
func (s *Store) SetOwnerPassword(hash string) {
	s.kv.Put(KeyCredentials, credentials{PasswordHash: hash})
}

// OwnerPasswordHash returns the stored password hash, if any.
func (s *Store) OwnerPasswordHash() (string, bool) {
	var creds credentials
	if !s.kv.Get(KeyCredentials, &creds) || creds.PasswordHash == "" {
		return "", false
	}
	return creds.PasswordHash, true
}

// JWTSecret returns the token signing secret, generating and persisting one
// on first use. If persistence fails the secret is regenerated on the next
// start and outstanding tokens are invalidated, which is acceptable for a
// single-owner installation.
func (s *Store) JWTSecret() string {
	var secret string
	if s.kv.Get(KeyJWTSecret, &secret) && secret != "" {
		return secret
	}

	buf := make([]byte, 32)
	rand.Read(buf)
	secret = hex.EncodeToString(buf)
	s.kv.Put(KeyJWTSecret, secret)
	return secret
}
