package service

import (
	"fmt"
	"strings"
	"studybuddy_backend/internal/model"
	"studybuddy_backend/internal/util"
)

// Submission carries whatever the user handed in for a goal. Only the
// field relevant to the evaluator in play is consulted.
type Submission struct {
	// Answers maps question ID to the selected option (1..4).
	Answers map[uint]int
	// Code is the practical challenge submission.
	Code string
}

// Outcome is an evaluator's verdict. A rejected outcome carries the
// reason (and quiz score/total where applicable) for user feedback; no
// state is mutated on rejection.
type Outcome struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
	Score    int    `json:"score"`
	Total    int    `json:"total"`
}

// Evaluator decides whether a submission satisfies a goal's completion
// criterion. Implementations must be side-effect free; recording and
// scoring happen in the completion pipeline.
type Evaluator interface {
	Evaluate(goal *model.Goal, sub Submission) (Outcome, error)
}

// DirectMarkEvaluator accepts unconditionally. Used for materials-only
// goals that have no verifiable criterion.
type DirectMarkEvaluator struct{}

func (DirectMarkEvaluator) Evaluate(goal *model.Goal, sub Submission) (Outcome, error) {
	return Outcome{Accepted: true}, nil
}

// QuizGraderEvaluator requires a perfect score: every question of the
// goal answered with its correct option. A goal with zero questions can
// never be accepted through this evaluator.
type QuizGraderEvaluator struct{}

func (QuizGraderEvaluator) Evaluate(goal *model.Goal, sub Submission) (Outcome, error) {
	total := len(goal.Questions)
	if total == 0 {
		return Outcome{
			Accepted: false,
			Reason:   "this goal has no quiz questions",
		}, nil
	}

	score := 0
	for _, q := range goal.Questions {
		if sub.Answers[q.ID] == q.CorrectOption {
			score++
		}
	}

	if score == total {
		return Outcome{Accepted: true, Score: score, Total: total}, nil
	}

	return Outcome{
		Accepted: false,
		Reason:   fmt.Sprintf("you scored %d/%d, 100%% is required to pass", score, total),
		Score:    score,
		Total:    total,
	}, nil
}

// PracticalValidatorEvaluator accepts when the challenge's validation
// text appears in the submitted code, compared case-insensitively. A
// substring check rather than a parser is the intended behavior for
// these exercises; swapping in a stricter validator only means
// providing another Evaluator.
type PracticalValidatorEvaluator struct{}

func (PracticalValidatorEvaluator) Evaluate(goal *model.Goal, sub Submission) (Outcome, error) {
	if goal.Challenge == nil {
		return Outcome{}, util.ErrChallengeNotFound
	}

	code := strings.ToLower(sub.Code)
	want := strings.ToLower(goal.Challenge.ValidationText)
	if strings.Contains(code, want) {
		return Outcome{Accepted: true}, nil
	}

	return Outcome{
		Accepted: false,
		Reason:   "your code does not satisfy the challenge yet, check the hint and try again",
	}, nil
}
