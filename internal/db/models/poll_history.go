package models

import "time"

// PollResult is one answer's tally for a poll. Width is the relative bar
// width for rendering, in [1, 200]; it is filled in by the normalizer and
// stays zero on raw tallies.
type PollResult struct {
	PollID int    `json:"poll_id"`
	Answer string `json:"answer"`
	Count  int64  `json:"count"`
	Width  int    `json:"width"`
}

type PollHistoryItem struct {
	QuestionText string       `json:"question_text"`
	CreatedAt    time.Time    `json:"created_at"`
	EndedAt      time.Time    `json:"ended_at"`
	Results      []PollResult `json:"results"`
}

// PollHistory is the presentation-agnostic view of a creator's polls,
// oldest first. It is computed per request and never persisted.
type PollHistory struct {
	Room               bool              `json:"room"`
	CreatorDisplayName string            `json:"creator_display_name"`
	Polls              []PollHistoryItem `json:"polls"`
}
