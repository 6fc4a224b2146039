package question_test

import (
	"testing"

	"github.com/dsa-tracker/backend/internal/domain/question"
)

func TestNewOverview(t *testing.T) {
	o := question.NewOverview(190, 57, 12)

	if o.Remaining != 133 {
		t.Errorf("Remaining = %d, want 133", o.Remaining)
	}
	if o.CompletionPercentage != 30 {
		t.Errorf("CompletionPercentage = %d, want 30", o.CompletionPercentage)
	}
	if o.ReviewQuestions != 12 {
		t.Errorf("ReviewQuestions = %d, want 12", o.ReviewQuestions)
	}
}

func TestNewOverview_Rounds(t *testing.T) {
	// 2/3 -> 66.67% rounds up
	if pct := question.NewOverview(3, 2, 0).CompletionPercentage; pct != 67 {
		t.Errorf("CompletionPercentage = %d, want 67", pct)
	}
	// 1/3 -> 33.33% rounds down
	if pct := question.NewOverview(3, 1, 0).CompletionPercentage; pct != 33 {
		t.Errorf("CompletionPercentage = %d, want 33", pct)
	}
}

func TestNewOverview_EmptyCatalog(t *testing.T) {
	o := question.NewOverview(0, 0, 0)
	if o.CompletionPercentage != 0 {
		t.Errorf("empty catalog should report 0%%, got %d", o.CompletionPercentage)
	}
	if o.Remaining != 0 {
		t.Errorf("Remaining = %d, want 0", o.Remaining)
	}
}

func TestBuildStats(t *testing.T) {
	snap := question.StatsSnapshot{
		Total:     4,
		Completed: 3,
		Review:    1,
		Difficulties: []question.DifficultyTally{
			{Difficulty: question.DifficultyEasy, Count: 2},
			{Difficulty: question.DifficultyMedium, Count: 1},
			{Difficulty: question.DifficultyHard, Count: 1},
		},
		Steps: []question.StepTally{
			{StepNo: 1, StepTitle: "Arrays", Total: 2, Completed: 2},
			{StepNo: 2, StepTitle: "Strings", Total: 2, Completed: 1, Review: 1},
		},
	}

	stats := question.BuildStats(snap)

	if stats.Overview.Remaining != 1 {
		t.Errorf("Remaining = %d, want 1", stats.Overview.Remaining)
	}

	var diffSum int64
	for _, d := range stats.DifficultyBreakdown {
		diffSum += d.Count
	}
	if diffSum != snap.Total {
		t.Errorf("difficulty counts sum to %d, want %d", diffSum, snap.Total)
	}
	if stats.DifficultyBreakdown[0].Difficulty != "Easy" ||
		stats.DifficultyBreakdown[1].Difficulty != "Medium" ||
		stats.DifficultyBreakdown[2].Difficulty != "Hard" {
		t.Errorf("difficulty labels wrong: %+v", stats.DifficultyBreakdown)
	}

	var stepSum int64
	for _, s := range stats.StepBreakdown {
		stepSum += s.TotalQuestions
	}
	if stepSum != snap.Total {
		t.Errorf("step counts sum to %d, want %d", stepSum, snap.Total)
	}
	if stats.StepBreakdown[0].StepNo != 1 || stats.StepBreakdown[1].StepNo != 2 {
		t.Errorf("step breakdown out of order: %+v", stats.StepBreakdown)
	}
	if stats.StepBreakdown[1].CompletedQuestions != 1 || stats.StepBreakdown[1].ReviewQuestions != 1 {
		t.Errorf("step 2 tallies wrong: %+v", stats.StepBreakdown[1])
	}
}
