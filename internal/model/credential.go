package model

import (
	"time"

	"github.com/passmint/passmint-go/strength"
)

// CredentialEntry represents a stored credential in the database.
type CredentialEntry struct {
	ID            int64
	UserID        int64
	EntryID       string
	Name          string
	Secret        string
	StrengthScore float64
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Deleted       bool
}

// CredentialRequest represents a credential create/update or a single
// entry in a sync upload. The secret is scored server-side before it
// is stored.
type CredentialRequest struct {
	EntryID string `json:"entry_id"`
	Name    string `json:"name"`
	Secret  string `json:"secret"`
	Version int    `json:"version"`
	Deleted bool   `json:"deleted"`
}

// CredentialResponse represents a single credential in an API response.
type CredentialResponse struct {
	EntryID       string    `json:"entry_id"`
	Name          string    `json:"name"`
	Secret        string    `json:"secret"`
	StrengthScore float64   `json:"strength_score"`
	Secure        bool      `json:"is_secure"`
	Version       int       `json:"version"`
	UpdatedAt     time.Time `json:"updated_at"`
	Deleted       bool      `json:"deleted"`
}

// MintRequest represents a request to generate, score, and store a
// credential in one call.
type MintRequest struct {
	EntryID  string          `json:"entry_id"`
	Name     string          `json:"name"`
	Generate GenerateRequest `json:"generate"`
}

// MintResponse represents a minted credential together with the full
// strength report of the generated secret.
type MintResponse struct {
	Entry  CredentialResponse `json:"entry"`
	Report strength.Report    `json:"report"`
}

// SyncRequest represents a client sync request with optional last sync timestamp.
type SyncRequest struct {
	LastSyncedAt *time.Time          `json:"last_synced_at"`
	Entries      []CredentialRequest `json:"entries"`
}

// SyncResponse represents a server sync response with changed entries.
type SyncResponse struct {
	SyncedAt time.Time            `json:"synced_at"`
	Entries  []CredentialResponse `json:"entries"`
	Skipped  int                  `json:"skipped,omitempty"`
}
