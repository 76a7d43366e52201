package oddscore

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/odds-iq/internal/models"
)

func completedMatch(home, away int) *models.Match {
	return &models.Match{
		ID:        uuid.New(),
		HomeTeam:  "Arsenal",
		AwayTeam:  "Chelsea",
		SportKey:  "soccer_epl",
		HomeScore: &home,
		AwayScore: &away,
		Completed: true,
	}
}

func TestActualWinner(t *testing.T) {
	cases := []struct {
		home, away int
		want       models.Outcome
	}{
		{2, 1, models.OutcomeHome},
		{1, 3, models.OutcomeAway},
		{1, 1, models.OutcomeDraw},
	}
	for _, tc := range cases {
		winner, err := ActualWinner(completedMatch(tc.home, tc.away))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if winner != tc.want {
			t.Fatalf("score %d-%d: expected %s, got %s", tc.home, tc.away, tc.want, winner)
		}
	}
}

func TestActualWinnerIncompleteMatch(t *testing.T) {
	match := completedMatch(1, 0)
	match.Completed = false
	if _, err := ActualWinner(match); err != models.ErrMatchNotComplete {
		t.Fatalf("expected ErrMatchNotComplete, got %v", err)
	}

	match = completedMatch(1, 0)
	match.AwayScore = nil
	if _, err := ActualWinner(match); err != models.ErrNoFinalScore {
		t.Fatalf("expected ErrNoFinalScore, got %v", err)
	}
}

func TestVerifyPredictionCorrect(t *testing.T) {
	prediction := &models.Prediction{
		PredictedOutcome: models.OutcomeAway,
		PredictedTeam:    "Chelsea",
	}

	result, err := VerifyPrediction(prediction, completedMatch(1, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ActualWinner != models.OutcomeAway || !result.WasCorrect {
		t.Fatalf("away 3-1 win must verify correct, got %+v", result)
	}
}

func TestVerifyPredictionIdempotent(t *testing.T) {
	prediction := &models.Prediction{
		ID:               uuid.New(),
		PredictedOutcome: models.OutcomeHome,
	}
	match := completedMatch(2, 0)

	first, err := VerifyPrediction(prediction, match)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ApplyVerification(prediction, first, time.Now())
	firstVerifiedAt := *prediction.VerifiedAt

	second, err := VerifyPrediction(prediction, match)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *second != *first {
		t.Fatalf("re-verification must produce identical results: %+v != %+v", second, first)
	}

	ApplyVerification(prediction, second, time.Now().Add(time.Hour))
	if !prediction.VerifiedAt.Equal(firstVerifiedAt) {
		t.Fatalf("verified record must stay immutable")
	}
	if !prediction.WasCorrect || *prediction.ActualWinner != models.OutcomeHome {
		t.Fatalf("stored outcome changed on re-verification: %+v", prediction)
	}
}

func TestComputeAccuracy(t *testing.T) {
	predictions := make([]*models.Prediction, 0, 10)
	for i := 0; i < 6; i++ {
		predictions = append(predictions, &models.Prediction{ResultVerified: true, WasCorrect: true})
	}
	for i := 0; i < 2; i++ {
		predictions = append(predictions, &models.Prediction{ResultVerified: true, WasCorrect: false})
	}
	for i := 0; i < 2; i++ {
		predictions = append(predictions, &models.Prediction{})
	}

	stats := ComputeAccuracy(predictions)
	if stats.Total != 10 || stats.Correct != 6 || stats.Incorrect != 2 || stats.Pending != 2 {
		t.Fatalf("unexpected counters: %+v", stats)
	}
	if stats.AccuracyPercentage != 75.0 {
		t.Fatalf("expected accuracy 75.0, got %v", stats.AccuracyPercentage)
	}
}

func TestComputeAccuracyEmptySample(t *testing.T) {
	stats := ComputeAccuracy(nil)
	if stats.AccuracyPercentage != 0 {
		t.Fatalf("empty sample must report 0 accuracy, got %v", stats.AccuracyPercentage)
	}

	stats = ComputeAccuracy([]*models.Prediction{{}, {}})
	if stats.AccuracyPercentage != 0 || stats.Pending != 2 {
		t.Fatalf("all-pending sample must report 0 accuracy, got %+v", stats)
	}
}
