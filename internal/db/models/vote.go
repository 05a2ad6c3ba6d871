package models

import "time"

type Vote struct {
	ID        int       `json:"id" pg:",pk"`
	PollID    int       `json:"poll_id" pg:",notnull"`
	UserID    int64     `json:"user_id" pg:",notnull"`
	Answer    string    `json:"answer" pg:",notnull"`
	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
}
