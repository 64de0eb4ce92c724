package service

import (
	"context"
	"testing"

	"github.com/passmint/passmint-go/internal/model"
	"github.com/passmint/passmint-go/internal/repository"
	"github.com/passmint/passmint-go/strength"
)

func newTestCredentialService() *CredentialService {
	return NewCredentialService(
		repository.NewCredentialRepository(nil),
		NewGeneratorService(nil),
		strength.NewScorer(strength.DefaultWordList()),
	)
}

func TestCreateEntry_EmptyEntryID(t *testing.T) {
	svc := newTestCredentialService()

	_, err := svc.CreateEntry(context.Background(), 1, model.CredentialRequest{
		EntryID: "",
		Name:    "github",
		Secret:  "s3cr3t",
	})

	if err != ErrEntryIDRequired {
		t.Errorf("expected ErrEntryIDRequired, got %v", err)
	}
}

func TestCreateEntry_EmptyName(t *testing.T) {
	svc := newTestCredentialService()

	_, err := svc.CreateEntry(context.Background(), 1, model.CredentialRequest{
		EntryID: "entry-1",
		Name:    "",
		Secret:  "s3cr3t",
	})

	if err != ErrNameRequired {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
}

func TestCreateEntry_EmptySecret(t *testing.T) {
	svc := newTestCredentialService()

	_, err := svc.CreateEntry(context.Background(), 1, model.CredentialRequest{
		EntryID: "entry-1",
		Name:    "github",
		Secret:  "",
	})

	if err != ErrSecretRequired {
		t.Errorf("expected ErrSecretRequired, got %v", err)
	}
}

func TestUpdateEntry_EmptySecret(t *testing.T) {
	svc := newTestCredentialService()

	_, err := svc.UpdateEntry(context.Background(), 1, "entry-1", model.CredentialRequest{
		Secret: "",
	})

	if err != ErrSecretRequired {
		t.Errorf("expected ErrSecretRequired, got %v", err)
	}
}

func TestMint_EmptyEntryID(t *testing.T) {
	svc := newTestCredentialService()

	_, err := svc.Mint(context.Background(), 1, model.MintRequest{
		EntryID: "",
		Name:    "github",
	})

	if err != ErrEntryIDRequired {
		t.Errorf("expected ErrEntryIDRequired, got %v", err)
	}
}

func TestMint_EmptyName(t *testing.T) {
	svc := newTestCredentialService()

	_, err := svc.Mint(context.Background(), 1, model.MintRequest{
		EntryID: "entry-1",
		Name:    "",
	})

	if err != ErrNameRequired {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
}

func TestEntriesToResponse_EmptySlice(t *testing.T) {
	svc := newTestCredentialService()

	result := svc.entriesToResponse(nil)

	if result == nil {
		t.Fatal("expected non-nil empty slice, got nil")
	}
	if len(result) != 0 {
		t.Errorf("expected 0 entries, got %d", len(result))
	}
}

func TestEntriesToResponse_SecureFlag(t *testing.T) {
	svc := newTestCredentialService()

	entries := []model.CredentialEntry{
		{EntryID: "weak", Name: "old login", Secret: "abc", StrengthScore: 60, Version: 1},
		{EntryID: "strong", Name: "new login", Secret: "xK2!pq", StrengthScore: 180, Version: 2},
	}

	result := svc.entriesToResponse(entries)

	if len(result) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result))
	}
	if result[0].Secure {
		t.Error("entry below threshold reported secure")
	}
	if !result[1].Secure {
		t.Error("entry above threshold not reported secure")
	}
	if result[1].StrengthScore != 180 {
		t.Errorf("strength score = %v, want 180", result[1].StrengthScore)
	}
}
