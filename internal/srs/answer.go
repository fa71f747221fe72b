package srs

import (
	"fmt"
	"strings"

	"vocabtrainer/internal/models"
)

// Answer is the three-way recall signal collected from the user. It collapses
// the 0-5 quality scale into the buckets the study flow actually presents.
type Answer int

const (
	AnswerForgot     Answer = iota // no recall at all
	AnswerUnfamiliar               // recognized but not confidently recalled
	AnswerKnew                     // recalled correctly
)

// Result maps an answer bucket to the scheduler's input:
// forgot -> {1, false}, unfamiliar -> {3, true}, knew -> {5, true}.
func (a Answer) Result() models.ReviewResult {
	switch a {
	case AnswerUnfamiliar:
		return models.ReviewResult{Quality: 3, IsCorrect: true}
	case AnswerKnew:
		return models.ReviewResult{Quality: 5, IsCorrect: true}
	default:
		return models.ReviewResult{Quality: 1, IsCorrect: false}
	}
}

// String returns the answer's name
func (a Answer) String() string {
	switch a {
	case AnswerForgot:
		return "forgot"
	case AnswerUnfamiliar:
		return "unfamiliar"
	case AnswerKnew:
		return "knew"
	default:
		return fmt.Sprintf("Answer(%d)", int(a))
	}
}

// ParseAnswer converts user input to an answer bucket. Single-letter
// shorthands are accepted for the interactive study loop.
func ParseAnswer(s string) (Answer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "forgot":
		return AnswerForgot, nil
	case "u", "unfamiliar":
		return AnswerUnfamiliar, nil
	case "k", "knew", "known":
		return AnswerKnew, nil
	default:
		return 0, fmt.Errorf("unknown answer %q (expected forgot, unfamiliar or knew)", s)
	}
}
