package services

import "errors"

var (
	// ErrNoActivePoll is returned when an operation needs the creator's
	// active poll and there is none. Callers should check HasActivePoll
	// before ending a poll.
	ErrNoActivePoll = errors.New("creator has no active poll")

	// ErrNotVoted is returned by ChangeVote when the user has no vote on
	// the poll yet. Callers should check HasVoted first.
	ErrNotVoted = errors.New("user has not voted on this poll")
)
