package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/passmint/passmint-go/internal/model"
	"github.com/passmint/passmint-go/internal/repository"
	"github.com/passmint/passmint-go/strength"
)

var (
	ErrEntryIDRequired = errors.New("entry_id is required")
	ErrSecretRequired  = errors.New("secret is required")
	ErrNameRequired    = errors.New("name is required")
	ErrEntryNotFound   = errors.New("credential entry not found")
)

// CredentialService handles credential entry business logic. Every
// stored secret is scored on the way in; the score travels with the
// entry so clients can surface weak credentials without re-scoring.
type CredentialService struct {
	repo      *repository.CredentialRepository
	generator *GeneratorService
	scorer    *strength.Scorer
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(repo *repository.CredentialRepository, generator *GeneratorService, scorer *strength.Scorer) *CredentialService {
	return &CredentialService{repo: repo, generator: generator, scorer: scorer}
}

// CreateEntry creates a new credential entry for a user.
func (s *CredentialService) CreateEntry(ctx context.Context, userID int64, req model.CredentialRequest) (model.CredentialResponse, error) {
	if req.EntryID == "" {
		return model.CredentialResponse{}, ErrEntryIDRequired
	}
	if req.Name == "" {
		return model.CredentialResponse{}, ErrNameRequired
	}
	if req.Secret == "" {
		return model.CredentialResponse{}, ErrSecretRequired
	}

	entry := model.CredentialEntry{
		UserID:        userID,
		EntryID:       req.EntryID,
		Name:          req.Name,
		Secret:        req.Secret,
		StrengthScore: s.scorer.Score(req.Secret).TotalScore,
		Version:       1,
	}

	if err := s.repo.Upsert(ctx, &entry); err != nil {
		return model.CredentialResponse{}, err
	}
	entry.UpdatedAt = time.Now().UTC()

	return s.toResponse(entry), nil
}

// UpdateEntry updates an existing credential entry, rescoring the secret.
func (s *CredentialService) UpdateEntry(ctx context.Context, userID int64, entryID string, req model.CredentialRequest) (model.CredentialResponse, error) {
	if req.Secret == "" {
		return model.CredentialResponse{}, ErrSecretRequired
	}

	existing, err := s.repo.GetByEntryID(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return model.CredentialResponse{}, ErrEntryNotFound
		}
		return model.CredentialResponse{}, err
	}

	name := req.Name
	if name == "" {
		name = existing.Name
	}

	entry := model.CredentialEntry{
		UserID:        userID,
		EntryID:       entryID,
		Name:          name,
		Secret:        req.Secret,
		StrengthScore: s.scorer.Score(req.Secret).TotalScore,
		Version:       existing.Version + 1,
	}

	if err := s.repo.Upsert(ctx, &entry); err != nil {
		return model.CredentialResponse{}, err
	}
	entry.UpdatedAt = time.Now().UTC()

	return s.toResponse(entry), nil
}

// Mint generates a new secret, scores it, and stores it as a
// credential entry in one operation. The full report is returned so
// callers can show the breakdown once; only the total is persisted.
func (s *CredentialService) Mint(ctx context.Context, userID int64, req model.MintRequest) (model.MintResponse, error) {
	if req.EntryID == "" {
		return model.MintResponse{}, ErrEntryIDRequired
	}
	if req.Name == "" {
		return model.MintResponse{}, ErrNameRequired
	}

	generated, err := s.generator.Generate(req.Generate)
	if err != nil {
		return model.MintResponse{}, err
	}

	report := s.scorer.Score(generated.Password)

	entry := model.CredentialEntry{
		UserID:        userID,
		EntryID:       req.EntryID,
		Name:          req.Name,
		Secret:        generated.Password,
		StrengthScore: report.TotalScore,
		Version:       1,
	}

	if err := s.repo.Upsert(ctx, &entry); err != nil {
		return model.MintResponse{}, err
	}
	entry.UpdatedAt = time.Now().UTC()

	return model.MintResponse{
		Entry:  s.toResponse(entry),
		Report: report,
	}, nil
}

// DeleteEntry soft-deletes a credential entry.
func (s *CredentialService) DeleteEntry(ctx context.Context, userID int64, entryID string) error {
	err := s.repo.SoftDelete(ctx, userID, entryID)
	if errors.Is(err, repository.ErrEntryNotFound) {
		return ErrEntryNotFound
	}
	return err
}

// ListEntries returns all non-deleted credential entries for a user.
func (s *CredentialService) ListEntries(ctx context.Context, userID int64) ([]model.CredentialResponse, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.entriesToResponse(entries), nil
}

// Sync processes incoming client entries and returns server-side changes.
func (s *CredentialService) Sync(ctx context.Context, userID int64, req model.SyncRequest) (model.SyncResponse, error) {
	syncedAt := time.Now().UTC()

	// Process incoming client entries within a transaction.
	var skipped int
	if len(req.Entries) > 0 {
		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return model.SyncResponse{}, err
		}
		defer tx.Rollback()

		for _, re := range req.Entries {
			if re.EntryID == "" || (re.Secret == "" && !re.Deleted) {
				slog.Warn("skipping entry: incomplete sync record", "entry_id", re.EntryID)
				skipped++
				continue
			}

			version := re.Version
			if version < 1 {
				version = 1
			}

			entry := model.CredentialEntry{
				UserID:        userID,
				EntryID:       re.EntryID,
				Name:          re.Name,
				Secret:        re.Secret,
				StrengthScore: s.scorer.Score(re.Secret).TotalScore,
				Version:       version,
				Deleted:       re.Deleted,
			}

			if err := s.repo.UpsertTx(ctx, tx, &entry); err != nil {
				slog.Warn("skipping entry: upsert failed", "entry_id", re.EntryID, "error", err)
				skipped++
				continue
			}
		}

		if err := tx.Commit(); err != nil {
			return model.SyncResponse{}, err
		}
	}

	// Get server-side changes to send back to the client.
	var serverEntries []model.CredentialEntry
	var err error

	if req.LastSyncedAt == nil {
		// First sync: return all entries including deleted.
		serverEntries, err = s.repo.GetChangedSince(ctx, userID, time.Time{})
	} else {
		serverEntries, err = s.repo.GetChangedSince(ctx, userID, *req.LastSyncedAt)
	}
	if err != nil {
		return model.SyncResponse{}, err
	}

	return model.SyncResponse{
		SyncedAt: syncedAt,
		Entries:  s.entriesToResponse(serverEntries),
		Skipped:  skipped,
	}, nil
}

func (s *CredentialService) toResponse(e model.CredentialEntry) model.CredentialResponse {
	return model.CredentialResponse{
		EntryID:       e.EntryID,
		Name:          e.Name,
		Secret:        e.Secret,
		StrengthScore: e.StrengthScore,
		Secure:        e.StrengthScore >= strength.SecureThreshold,
		Version:       e.Version,
		UpdatedAt:     e.UpdatedAt,
		Deleted:       e.Deleted,
	}
}

// entriesToResponse converts a slice of CredentialEntry to a slice of CredentialResponse.
func (s *CredentialService) entriesToResponse(entries []model.CredentialEntry) []model.CredentialResponse {
	result := make([]model.CredentialResponse, len(entries))
	for i, e := range entries {
		result[i] = s.toResponse(e)
	}
	return result
}
