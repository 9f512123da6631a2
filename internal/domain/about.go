package domain

import "context"

// Skill is a row from the skills collection shown on the about page.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
}

// TimelineEvent is a row from timeline_events, newest year first.
type TimelineEvent struct {
	ID          string `json:"id"`
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SkillRepository interface {
	Fetch(ctx context.Context) ([]Skill, error)
}

type TimelineRepository interface {
	Fetch(ctx context.Context) ([]TimelineEvent, error)
}

// AboutUsecase groups the read-only collections backing the about page.
type AboutUsecase interface {
	Skills(ctx context.Context) ([]Skill, error)
	Timeline(ctx context.Context) ([]TimelineEvent, error)
}
