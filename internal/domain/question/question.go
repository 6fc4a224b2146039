package question

import (
	"errors"
	"fmt"
	"time"
)

// Difficulty is the question difficulty level as stored in the catalog.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Label returns the display name for the difficulty level.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// Question is a single entry in the curated catalog. The `id` field is the
// business key used by all endpoints; the store's own document key is never
// exposed. Records are created by the seed importer only — the API mutates
// nothing but the completed/review flags.
type Question struct {
	ID            string           `bson:"id" json:"id"`
	StepNo        int              `bson:"step_no" json:"step_no"`
	SubStepNo     int              `bson:"sub_step_no" json:"sub_step_no"`
	SlNo          int              `bson:"sl_no" json:"sl_no"`
	StepTitle     string           `bson:"step_title" json:"step_title"`
	SubStepTitle  string           `bson:"sub_step_title" json:"sub_step_title"`
	QuestionTitle string           `bson:"question_title" json:"question_title"`
	PostLink      string           `bson:"post_link" json:"post_link"`
	YTLink        *string          `bson:"yt_link,omitempty" json:"yt_link,omitempty"`
	PlusLink      *string          `bson:"plus_link,omitempty" json:"plus_link,omitempty"`
	EditorialLink *string          `bson:"editorial_link,omitempty" json:"editorial_link,omitempty"`
	LCLink        *string          `bson:"lc_link,omitempty" json:"lc_link,omitempty"`
	CompanyTags   []string         `bson:"company_tags,omitempty" json:"company_tags,omitempty"`
	Difficulty    Difficulty       `bson:"difficulty" json:"difficulty"`
	QuesTopic     []map[string]any `bson:"ques_topic" json:"ques_topic"`
	Review        bool             `bson:"review" json:"review"`
	Completed     bool             `bson:"completed" json:"completed"`
	CreatedAt     time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time        `bson:"updated_at" json:"updated_at"`
}

// Validate checks the constraints the importer enforces before a record is
// allowed into the catalog.
func (q *Question) Validate() error {
	if q.ID == "" {
		return errors.New("id is required")
	}
	if q.StepTitle == "" {
		return errors.New("step_title is required")
	}
	if q.SubStepTitle == "" {
		return errors.New("sub_step_title is required")
	}
	if q.QuestionTitle == "" {
		return errors.New("question_title is required")
	}
	if q.PostLink == "" {
		return errors.New("post_link is required")
	}
	if !q.Difficulty.Valid() {
		return fmt.Errorf("difficulty %d out of range", q.Difficulty)
	}
	if len(q.QuesTopic) == 0 {
		return errors.New("ques_topic is required")
	}
	return nil
}
