package model

import (
	"time"
)

type ProblemDifficulty string

const (
	DifficultyEasy   ProblemDifficulty = "Easy"
	DifficultyMedium ProblemDifficulty = "Medium"
	DifficultyHard   ProblemDifficulty = "Hard"
)

// Valid reports whether d is one of the known difficulty levels.
func (d ProblemDifficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Problem struct {
	ID              string            `json:"id"`
	ProblemNumber   int               `json:"problemNumber"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	DescriptionHTML string            `json:"descriptionHtml,omitempty"` // Detail view only
	Difficulty      ProblemDifficulty `json:"difficulty"`
	Category        string            `json:"category"`
	Tags            []string          `json:"tags"`
	AcceptanceRate  float64           `json:"acceptanceRate"`
	Likes           int               `json:"likes"`
	IsActive        bool              `json:"isActive"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}
