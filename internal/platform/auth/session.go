// Package auth holds the client-side session lifecycle: the persisted
// credential + identity pair, the accessor the API gateway reads the bearer
// token through, and the route guard that gates protected commands.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// identitySchemaVersion tags the persisted identity file so a future shape
// change can be detected instead of silently misparsed.
const identitySchemaVersion = 1

const (
	tokenFile    = "token"
	identityFile = "identity.json"
)

// Identity is the authenticated user's profile. Immutable on the client
// except by re-establishing the session.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// Roles accepted by the backend.
const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
	RoleStaff  = "staff"
)

// Session pairs the bearer credential with the identity it proves.
// Invariant: both fields are set together or not at all.
type Session struct {
	Credential string
	Identity   Identity
}

// persistedIdentity is the on-disk shape of the identity file.
type persistedIdentity struct {
	SchemaVersion int      `json:"schema_version"`
	Identity      Identity `json:"identity"`
}

// Store owns the current session and its durable copy. It is the single
// writer of the credential; readers get it through Credential, which the
// gateway is wired to call per request.
type Store struct {
	dir     string
	current *Session
}

// NewStore creates a session store rooted at dir. Nothing is read from disk
// until LoadPersisted.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// LoadPersisted reads the credential and identity written by a previous
// Establish. It fails soft: missing files, unreadable files, a malformed
// identity document, or a schema version mismatch all leave the store
// unauthenticated and return nil.
func (s *Store) LoadPersisted() *Session {
	tokenBytes, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return nil
	}
	credential := strings.TrimSpace(string(tokenBytes))
	if credential == "" {
		return nil
	}

	identityBytes, err := os.ReadFile(filepath.Join(s.dir, identityFile))
	if err != nil {
		return nil
	}
	var p persistedIdentity
	if err := json.Unmarshal(identityBytes, &p); err != nil {
		return nil
	}
	if p.SchemaVersion != identitySchemaVersion {
		return nil
	}

	s.current = &Session{Credential: credential, Identity: p.Identity}
	return s.current
}

// Establish persists the credential and identity as a pair and makes them
// the current session. The pair is written atomically with respect to the
// in-memory state: on any persistence failure nothing changes.
func (s *Store) Establish(credential string, identity Identity) error {
	if credential == "" {
		return errors.New("credential must not be empty")
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	identityBytes, err := json.MarshalIndent(persistedIdentity{
		SchemaVersion: identitySchemaVersion,
		Identity:      identity,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(credential), 0o600); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, identityFile), identityBytes, 0o600); err != nil {
		// Roll back the credential so a half-written pair is never loadable.
		os.Remove(filepath.Join(s.dir, tokenFile))
		return fmt.Errorf("persist identity: %w", err)
	}

	s.current = &Session{Credential: credential, Identity: identity}
	return nil
}

// Clear removes the persisted pair and forgets the in-memory session.
// Idempotent: clearing an already-cleared store is a no-op.
func (s *Store) Clear() {
	os.Remove(filepath.Join(s.dir, tokenFile))
	os.Remove(filepath.Join(s.dir, identityFile))
	s.current = nil
}

// Current returns the active session, or nil when unauthenticated.
func (s *Store) Current() *Session {
	return s.current
}

// Credential returns the bearer token of the active session, or "" when
// unauthenticated. This is the injection point the gateway reads per call.
func (s *Store) Credential() string {
	if s.current == nil {
		return ""
	}
	return s.current.Credential
}

// IsAuthenticated reports whether a session is established. Holds the
// invariant isAuthenticated == (credential != "").
func (s *Store) IsAuthenticated() bool {
	return s.Credential() != ""
}
