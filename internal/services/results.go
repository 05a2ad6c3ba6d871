package services

import "poll_bot_system/internal/db/models"

// maxBarWidth is the width assigned to the answer with the most votes;
// everything else is scaled relative to it.
const maxBarWidth = 200

// NormalizeResults turns raw tallies into displayable results for one poll.
//
// Counted entries keep their incoming order (descending by count) and get a
// width proportional to the poll's own maximum count, truncated to an
// integer and clamped to at least 1 so every bar stays visible. Answers
// nobody voted on are appended afterwards as zero-count width-1 entries, in
// declared answer order. The function is pure: it never mutates its inputs.
func NormalizeResults(tallies []models.PollResult, answers []string) []models.PollResult {
	results := make([]models.PollResult, 0, len(answers))

	if len(tallies) > 0 {
		maxCount := tallies[0].Count
		for _, tally := range tallies {
			if tally.Count > maxCount {
				maxCount = tally.Count
			}
		}

		for _, tally := range tallies {
			width := int(float64(tally.Count) / float64(maxCount) * maxBarWidth)
			if width < 1 {
				width = 1
			}

			tally.Width = width
			results = append(results, tally)
		}
	}

	for _, answer := range answers {
		if containsAnswer(results, answer) {
			continue
		}

		results = append(results, models.PollResult{
			Answer: answer,
			Count:  0,
			Width:  1,
		})
	}

	return results
}

func containsAnswer(results []models.PollResult, answer string) bool {
	for _, result := range results {
		if result.Answer == answer {
			return true
		}
	}

	return false
}
