package crypto

import (
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	hasher := NewHasher(DefaultHashParams())

	hash, err := hasher.Hash("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	if hash == "" {
		t.Fatal("Hash() returned empty string")
	}

	// Verify PHC format: $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("Hash() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("Hash() algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[2] != "v=19" {
		t.Errorf("Hash() version = %q, want %q", parts[2], "v=19")
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("Hash() params = %q, want %q", parts[3], "m=65536,t=3,p=2")
	}
}

func TestVerifyCorrect(t *testing.T) {
	hasher := NewHasher(DefaultHashParams())

	password := "my-secure-password"
	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	match, err := hasher.Verify(password, hash)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}
	if !match {
		t.Error("Verify() returned false for correct password")
	}
}

func TestVerifyWrong(t *testing.T) {
	hasher := NewHasher(DefaultHashParams())

	hash, err := hasher.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	match, err := hasher.Verify("wrong-password", hash)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}
	if match {
		t.Error("Verify() returned true for wrong password")
	}
}

func TestVerifyAcrossParameterSets(t *testing.T) {
	// Hashes embed their own parameters; a hasher with different
	// defaults must still verify them.
	light := NewHasher(HashParams{
		Memory:      16 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
	hash, err := light.Hash("portable-password")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	standard := NewHasher(DefaultHashParams())
	match, err := standard.Verify("portable-password", hash)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}
	if !match {
		t.Error("Verify() failed for hash created under different parameters")
	}
}

func TestHashProducesDifferentHashes(t *testing.T) {
	hasher := NewHasher(DefaultHashParams())
	password := "same-password"

	hash1, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	hash2, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("Hash() produced identical hashes for same password (salt should differ)")
	}
}

func TestVerifyInvalidHash(t *testing.T) {
	hasher := NewHasher(DefaultHashParams())

	_, err := hasher.Verify("password", "invalid-hash-format")
	if err == nil {
		t.Error("Verify() expected error for invalid hash format")
	}
}
