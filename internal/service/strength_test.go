package service

import (
	"testing"

	"github.com/passmint/passmint-go/internal/model"
	"github.com/passmint/passmint-go/strength"
)

func TestCheck_ReportMatchesScorer(t *testing.T) {
	scorer := strength.NewScorer(strength.NewWordList([]string{"dragon"}))
	svc := NewStrengthService(scorer)

	resp := svc.Check(model.StrengthRequest{Password: "dragon-Pass1"})

	if resp.Report != scorer.Score("dragon-Pass1") {
		t.Error("service report diverged from scorer report")
	}
	if resp.Report.Details.Dictionary != 40 {
		t.Errorf("dictionary score = %v, want 40", resp.Report.Details.Dictionary)
	}
}

func TestCheck_EstimatePopulated(t *testing.T) {
	svc := NewStrengthService(strength.NewScorer(nil))

	resp := svc.Check(model.StrengthRequest{Password: "correct horse battery staple"})

	if resp.Estimate.Entropy <= 0 {
		t.Errorf("expected positive entropy estimate, got %v", resp.Estimate.Entropy)
	}
	if resp.Estimate.CrackTime == "" {
		t.Error("expected crack time display to be populated")
	}
}

func TestCheck_EstimateDoesNotAffectVerdict(t *testing.T) {
	svc := NewStrengthService(strength.NewScorer(nil))

	// 8 lowercase letters: total 75, secure under the reference scheme
	// regardless of what the advisory estimate thinks of it.
	resp := svc.Check(model.StrengthRequest{Password: "abcdefgh"})

	if resp.Report.TotalScore != 75 {
		t.Errorf("total score = %v, want 75", resp.Report.TotalScore)
	}
	if !resp.Report.Secure {
		t.Error("verdict must come from the reference scheme alone")
	}
}

func TestCheck_EmptyPassword(t *testing.T) {
	svc := NewStrengthService(strength.NewScorer(nil))

	resp := svc.Check(model.StrengthRequest{Password: ""})

	if resp.Report.TotalScore != 50 {
		t.Errorf("total score = %v, want 50", resp.Report.TotalScore)
	}
	if resp.Report.Secure {
		t.Error("empty password reported secure")
	}
}
