package hashing

import "testing"

func TestBcrypt_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(4) // min cost keeps the test fast

	digest, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !h.Verify("secret123", digest) {
		t.Fatalf("correct password did not verify")
	}
	if h.Verify("secret124", digest) {
		t.Fatalf("wrong password verified")
	}
}

func TestBcrypt_SaltVariance(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(4)

	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if a == b {
		t.Fatalf("two digests of the same password are identical; salt is not random")
	}
	if !h.Verify("same-password", a) || !h.Verify("same-password", b) {
		t.Fatalf("both digests must verify against the original password")
	}
}

func TestBcrypt_MalformedDigestDoesNotPanic(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(0)

	for _, digest := range []string{"", "not-a-digest", "$2a$xx$garbage"} {
		if h.Verify("anything", digest) {
			t.Fatalf("malformed digest %q verified", digest)
		}
	}
}

func TestNewBcrypt_DefaultCost(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(0)
	if h.cost <= 0 {
		t.Fatalf("expected positive default cost, got %d", h.cost)
	}
}
