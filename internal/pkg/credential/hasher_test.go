package credential

import "testing"

func TestBcryptHasherRoundtrip(t *testing.T) {
	h := BcryptHasher{Cost: 4}

	hash, err := h.Hash("senior123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "senior123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := h.Compare(hash, "senior123"); err != nil {
		t.Fatalf("compare with correct password: %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Fatal("compare with wrong password must fail")
	}
}

func TestBcryptHasherZeroCost(t *testing.T) {
	var h BcryptHasher

	hash, err := h.Hash("comp123")
	if err != nil {
		t.Fatalf("hash with default cost: %v", err)
	}
	if err := h.Compare(hash, "comp123"); err != nil {
		t.Fatalf("compare: %v", err)
	}
}
