package hash

import "testing"

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher()

	digest, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest must not equal the plaintext")
	}

	if !h.Verify("s3cret", digest) {
		t.Fatalf("expected matching password to verify")
	}
	if h.Verify("wrong", digest) {
		t.Fatalf("expected mismatching password to fail")
	}
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	h := NewBcryptHasher()

	// A garbage digest must never verify, and must never panic or error.
	if h.Verify("s3cret", "not-a-bcrypt-digest") {
		t.Fatalf("malformed digest verified")
	}
	if h.Verify("s3cret", "") {
		t.Fatalf("empty digest verified")
	}
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	h := NewBcryptHasher()

	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("expected salted digests to differ")
	}
}
