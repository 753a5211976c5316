package generator

import (
	"os"
	"strings"
)

// CredentialStore is a read-only lookup of named secrets.
type CredentialStore interface {
	// Lookup returns the value stored under name and whether it exists.
	Lookup(name string) (string, bool)
}

// EnvStore reads credentials from the process environment.
type EnvStore struct{}

func (EnvStore) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// StaticStore serves credentials from a fixed map, e.g. the config file.
type StaticStore map[string]string

func (s StaticStore) Lookup(name string) (string, bool) {
	v, ok := s[name]
	return v, ok
}

// ChainStore returns the first non-blank value found in its stores, in order.
type ChainStore []CredentialStore

func (c ChainStore) Lookup(name string) (string, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if v, ok := s.Lookup(name); ok && strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}

// resolveKey fetches an API key or fails with KindMissingCredential.
func resolveKey(backend string, store CredentialStore, name string) (string, error) {
	if store == nil {
		return "", failure(backend, KindMissingCredential, nil)
	}
	key, ok := store.Lookup(name)
	if !ok || strings.TrimSpace(key) == "" {
		return "", failure(backend, KindMissingCredential, nil)
	}
	return strings.TrimSpace(key), nil
}
