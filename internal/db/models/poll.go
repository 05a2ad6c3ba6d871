package models

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type StreamType string

const (
	StreamTypeDirect StreamType = "direct"
	StreamTypeRoom   StreamType = "room"
)

func (t StreamType) String() string {
	return string(t)
}

func (t StreamType) CapitalizedString() string {
	return cases.Title(language.English).String(t.String())
}

type Poll struct {
	ID           int        `json:"id" pg:",pk"`
	CreatedAt    time.Time  `json:"created_at" pg:"default:now()"`
	EndedAt      time.Time  `json:"ended_at"`
	Creator      int64      `json:"creator" pg:",notnull"`
	StreamID     string     `json:"stream_id"`
	Type         StreamType `json:"type" pg:",notnull,default:'direct'"`
	QuestionText string     `json:"question_text" pg:",notnull"`
	Answers      []string   `json:"answers" pg:",array"`
	Participants []int64    `json:"participants" pg:",array"`
}

// IsActive reports whether the poll is still open. A zero EndedAt is
// stored as NULL, so "active" and "ended_at IS NULL" are the same thing.
func (p *Poll) IsActive() bool {
	return p.EndedAt.IsZero()
}
