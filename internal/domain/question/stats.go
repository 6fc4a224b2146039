package question

import "math"

// StatsSnapshot carries the raw counts the store aggregates in one pass over
// the whole catalog. The store fills it; BuildStats turns it into the
// response shape.
type StatsSnapshot struct {
	Total     int64
	Completed int64
	Review    int64

	Difficulties []DifficultyTally // ordered by difficulty ascending
	Steps        []StepTally       // ordered by step number ascending
}

type DifficultyTally struct {
	Difficulty Difficulty
	Count      int64
}

type StepTally struct {
	StepNo    int
	StepTitle string
	Total     int64
	Completed int64
	Review    int64
}

// Overview summarizes progress over the whole catalog.
type Overview struct {
	TotalQuestions       int64 `json:"totalQuestions"`
	CompletedQuestions   int64 `json:"completedQuestions"`
	ReviewQuestions      int64 `json:"reviewQuestions"`
	Remaining            int64 `json:"remaining"`
	CompletionPercentage int   `json:"completionPercentage"`
}

type DifficultyCount struct {
	Difficulty string `json:"difficulty"`
	Count      int64  `json:"count"`
}

type StepStats struct {
	StepNo             int    `json:"stepNo"`
	StepTitle          string `json:"stepTitle"`
	TotalQuestions     int64  `json:"totalQuestions"`
	CompletedQuestions int64  `json:"completedQuestions"`
	ReviewQuestions    int64  `json:"reviewQuestions"`
}

type Stats struct {
	Overview            Overview          `json:"overview"`
	DifficultyBreakdown []DifficultyCount `json:"difficultyBreakdown"`
	StepBreakdown       []StepStats       `json:"stepBreakdown"`
}

// NewOverview derives the summary figures from raw counts. An empty catalog
// reports 0% complete rather than an undefined ratio.
func NewOverview(total, completed, review int64) Overview {
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return Overview{
		TotalQuestions:       total,
		CompletedQuestions:   completed,
		ReviewQuestions:      review,
		Remaining:            total - completed,
		CompletionPercentage: pct,
	}
}

// BuildStats shapes a snapshot into the stats payload, relabeling difficulty
// values to their display names. Ordering follows the snapshot, which the
// store sorts ascending.
func BuildStats(snap StatsSnapshot) Stats {
	difficulties := make([]DifficultyCount, len(snap.Difficulties))
	for i, t := range snap.Difficulties {
		difficulties[i] = DifficultyCount{
			Difficulty: t.Difficulty.Label(),
			Count:      t.Count,
		}
	}

	steps := make([]StepStats, len(snap.Steps))
	for i, t := range snap.Steps {
		steps[i] = StepStats{
			StepNo:             t.StepNo,
			StepTitle:          t.StepTitle,
			TotalQuestions:     t.Total,
			CompletedQuestions: t.Completed,
			ReviewQuestions:    t.Review,
		}
	}

	return Stats{
		Overview:            NewOverview(snap.Total, snap.Completed, snap.Review),
		DifficultyBreakdown: difficulties,
		StepBreakdown:       steps,
	}
}
