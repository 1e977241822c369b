package utils

import (
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pass1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "pass1" {
		t.Fatal("hash must never equal the plaintext")
	}
	if !CheckPasswordHash("pass1", hash) {
		t.Fatal("hash does not verify against its plaintext")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("wrong password must not verify")
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("pass1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	second, err := HashPassword("pass1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password should differ")
	}
}
