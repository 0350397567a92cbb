package service

import (
	"errors"
	"studybuddy_backend/internal/model"
	"studybuddy_backend/internal/util"
	"testing"
)

func TestDirectMarkAlwaysAccepts(t *testing.T) {
	goal := &model.Goal{Description: "Read the HTML materials", Points: 10}

	outcome, err := DirectMarkEvaluator{}.Evaluate(goal, Submission{})
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if !outcome.Accepted {
		t.Error("direct mark should accept unconditionally")
	}
}

func quizGoal() *model.Goal {
	goal := &model.Goal{Description: "Pass the CSS quiz", Points: 15}
	goal.Questions = []model.Question{
		{QuestionText: "q1", CorrectOption: 1},
		{QuestionText: "q2", CorrectOption: 3},
		{QuestionText: "q3", CorrectOption: 2},
	}
	goal.Questions[0].ID = 1
	goal.Questions[1].ID = 2
	goal.Questions[2].ID = 3
	return goal
}

func TestQuizGraderPerfectScoreAccepts(t *testing.T) {
	outcome, err := QuizGraderEvaluator{}.Evaluate(quizGoal(), Submission{
		Answers: map[uint]int{1: 1, 2: 3, 3: 2},
	})
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if !outcome.Accepted {
		t.Errorf("perfect score should be accepted, got reason %q", outcome.Reason)
	}
	if outcome.Score != 3 || outcome.Total != 3 {
		t.Errorf("expected score 3/3, got %d/%d", outcome.Score, outcome.Total)
	}
}

func TestQuizGraderPartialScoreRejects(t *testing.T) {
	outcome, err := QuizGraderEvaluator{}.Evaluate(quizGoal(), Submission{
		Answers: map[uint]int{1: 1, 2: 3, 3: 4},
	})
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if outcome.Accepted {
		t.Error("2/3 should be rejected, 100%% is required")
	}
	if outcome.Score != 2 || outcome.Total != 3 {
		t.Errorf("expected score 2/3, got %d/%d", outcome.Score, outcome.Total)
	}
	if outcome.Reason == "" {
		t.Error("rejection must carry a reason")
	}
}

func TestQuizGraderUnansweredQuestionsCountAsWrong(t *testing.T) {
	outcome, err := QuizGraderEvaluator{}.Evaluate(quizGoal(), Submission{
		Answers: map[uint]int{1: 1},
	})
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if outcome.Accepted {
		t.Error("partially answered quiz should be rejected")
	}
	if outcome.Score != 1 {
		t.Errorf("expected score 1, got %d", outcome.Score)
	}
}

func TestQuizGraderNoQuestionsNeverAccepts(t *testing.T) {
	goal := &model.Goal{Description: "empty quiz"}

	outcome, err := QuizGraderEvaluator{}.Evaluate(goal, Submission{Answers: map[uint]int{}})
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if outcome.Accepted {
		t.Error("a goal with zero questions must never be accepted via the quiz grader")
	}
}

func TestPracticalValidatorCaseInsensitiveMatch(t *testing.T) {
	goal := &model.Goal{
		Challenge: &model.PracticalChallenge{ValidationText: "color: blue"},
	}

	outcome, err := PracticalValidatorEvaluator{}.Evaluate(goal, Submission{
		Code: "DIV { COLOR: BLUE; }",
	})
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if !outcome.Accepted {
		t.Error("validation text match should be case-insensitive")
	}
}

func TestPracticalValidatorRejectsNonMatch(t *testing.T) {
	goal := &model.Goal{
		Challenge: &model.PracticalChallenge{ValidationText: "display: flex"},
	}

	outcome, err := PracticalValidatorEvaluator{}.Evaluate(goal, Submission{
		Code: "div { color: red; }",
	})
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if outcome.Accepted {
		t.Error("code without the validation text should be rejected")
	}
	if outcome.Reason == "" {
		t.Error("rejection must carry a reason")
	}
}

func TestPracticalValidatorMissingChallenge(t *testing.T) {
	goal := &model.Goal{Description: "no challenge attached"}

	_, err := PracticalValidatorEvaluator{}.Evaluate(goal, Submission{Code: "anything"})
	if !errors.Is(err, util.ErrChallengeNotFound) {
		t.Fatalf("expected ErrChallengeNotFound, got %v", err)
	}
}
