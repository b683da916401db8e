package auth

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testIdentity() Identity {
	return Identity{
		ID:       "u-1",
		Username: "jdoe",
		Email:    "jdoe@hospital.example.com",
		FullName: "John Doe",
		Role:     RoleStaff,
		IsActive: true,
	}
}

func TestEstablishThenLoadPersisted(t *testing.T) {
	dir := t.TempDir()

	s := NewStore(dir)
	if err := s.Establish("tok-abc", testIdentity()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A fresh store simulates a process restart.
	restarted := NewStore(dir)
	sess := restarted.LoadPersisted()
	if sess == nil {
		t.Fatal("expected persisted session to load")
	}
	if sess.Credential != "tok-abc" {
		t.Errorf("expected credential tok-abc, got %s", sess.Credential)
	}
	if sess.Identity.Username != "jdoe" {
		t.Errorf("expected identity to round-trip, got %+v", sess.Identity)
	}
	if !restarted.IsAuthenticated() {
		t.Error("expected store to be authenticated after load")
	}
}

// The session invariant: after any sequence of Establish/Clear calls,
// IsAuthenticated == (Credential != "").
func TestAuthenticationInvariant(t *testing.T) {
	s := NewStore(t.TempDir())

	check := func(step string) {
		t.Helper()
		if s.IsAuthenticated() != (s.Credential() != "") {
			t.Errorf("%s: invariant violated: authenticated=%v credential=%q",
				step, s.IsAuthenticated(), s.Credential())
		}
		if cur := s.Current(); cur != nil && cur.Credential == "" {
			t.Errorf("%s: session present without credential", step)
		}
	}

	check("initial")
	s.Establish("t1", testIdentity())
	check("after establish")
	s.Establish("t2", testIdentity())
	check("after re-establish")
	s.Clear()
	check("after clear")
	s.Clear()
	check("after second clear")
	s.Establish("t3", testIdentity())
	check("after establish following clear")
}

func TestClearIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	if err := s.Establish("tok", testIdentity()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Clear()
	if s.IsAuthenticated() {
		t.Fatal("expected unauthenticated after clear")
	}
	s.Clear()
	if s.IsAuthenticated() {
		t.Error("expected unauthenticated after double clear")
	}
	if _, err := os.Stat(filepath.Join(dir, "token")); !os.IsNotExist(err) {
		t.Error("expected token file removed")
	}
	if NewStore(dir).LoadPersisted() != nil {
		t.Error("expected nothing to load after clear")
	}
}

func TestEstablishRejectsEmptyCredential(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Establish("", testIdentity()); err == nil {
		t.Fatal("expected error for empty credential")
	}
	if s.IsAuthenticated() {
		t.Error("failed establish must not authenticate")
	}
}

func TestLoadPersistedFailsSoft(t *testing.T) {
	t.Run("missing dir", func(t *testing.T) {
		s := NewStore(filepath.Join(t.TempDir(), "nope"))
		if s.LoadPersisted() != nil {
			t.Error("expected nil for missing state")
		}
	})

	t.Run("malformed identity", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, "token"), []byte("tok"), 0o600)
		os.WriteFile(filepath.Join(dir, "identity.json"), []byte("{not json"), 0o600)
		s := NewStore(dir)
		if s.LoadPersisted() != nil {
			t.Error("expected nil for malformed identity")
		}
		if s.IsAuthenticated() {
			t.Error("malformed state must not authenticate")
		}
	})

	t.Run("token without identity", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, "token"), []byte("tok"), 0o600)
		s := NewStore(dir)
		if s.LoadPersisted() != nil {
			t.Error("expected nil when identity file is missing")
		}
	})

	t.Run("unknown schema version", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, "token"), []byte("tok"), 0o600)
		os.WriteFile(filepath.Join(dir, "identity.json"),
			[]byte(`{"schema_version":99,"identity":{}}`), 0o600)
		s := NewStore(dir)
		if s.LoadPersisted() != nil {
			t.Error("expected nil for unknown schema version")
		}
	})
}

func TestGuard(t *testing.T) {
	s := NewStore(t.TempDir())
	g := NewGuard(s)

	if err := g.Require(); err != ErrNotAuthenticated {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}

	s.Establish("tok", testIdentity())
	if err := g.Require(); err != nil {
		t.Errorf("unexpected error after establish: %v", err)
	}

	s.Clear()
	if err := g.Require(); err != ErrNotAuthenticated {
		t.Errorf("expected ErrNotAuthenticated after clear, got %v", err)
	}
}

// buildUnsignedJWT assembles a syntactically valid JWT with an empty
// signature, enough for unverified claim decoding.
func buildUnsignedJWT(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	header, _ := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "."
}

func TestDecodeClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	tok := buildUnsignedJWT(t, map[string]interface{}{"sub": "u-1", "exp": exp})

	claims := DecodeClaims(tok)
	if claims == nil {
		t.Fatal("expected claims")
	}
	if claims.Subject != "u-1" {
		t.Errorf("expected subject u-1, got %s", claims.Subject)
	}
	if claims.ExpiresAt.Unix() != exp {
		t.Errorf("expected exp %d, got %d", exp, claims.ExpiresAt.Unix())
	}
}

func TestDecodeClaimsFailsSoft(t *testing.T) {
	if DecodeClaims("opaque-token") != nil {
		t.Error("expected nil for opaque token")
	}
	if DecodeClaims("") != nil {
		t.Error("expected nil for empty token")
	}
}
