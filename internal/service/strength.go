package service

import (
	zxcvbn "github.com/ccojocar/zxcvbn-go"
	"github.com/passmint/passmint-go/internal/model"
	"github.com/passmint/passmint-go/strength"
)

// StrengthService handles password strength evaluation.
type StrengthService struct {
	scorer *strength.Scorer
}

// NewStrengthService creates a StrengthService over the given scorer.
func NewStrengthService(scorer *strength.Scorer) *StrengthService {
	return &StrengthService{scorer: scorer}
}

// Check scores a password and returns the canonical report alongside
// an advisory zxcvbn entropy estimate. The estimate never influences
// the verdict; the four-factor report is the contract.
func (s *StrengthService) Check(req model.StrengthRequest) model.StrengthResponse {
	report := s.scorer.Score(req.Password)
	estimate := zxcvbn.PasswordStrength(req.Password, nil)

	return model.StrengthResponse{
		Report: report,
		Estimate: model.EntropyEstimate{
			Entropy:   estimate.Entropy,
			Score:     estimate.Score,
			CrackTime: estimate.CrackTimeDisplay,
		},
	}
}

// Score exposes the raw report for other services.
func (s *StrengthService) Score(pwd string) strength.Report {
	return s.scorer.Score(pwd)
}
