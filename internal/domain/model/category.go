package model

import "time"

// Category counts are maintained by whoever writes the category; nothing
// reconciles them with the problems table.
type Category struct {
	ID           string    `json:"id"`
	Key          string    `json:"key"`
	Name         string    `json:"name"`
	Icon         string    `json:"icon"`
	Color        string    `json:"color"`
	ProblemCount int       `json:"problemCount"`
	EasyCount    int       `json:"easyCount"`
	MediumCount  int       `json:"mediumCount"`
	HardCount    int       `json:"hardCount"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}
