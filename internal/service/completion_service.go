package service

import (
	"errors"
	"studybuddy_backend/internal/model"
	"studybuddy_backend/internal/repository"
	"studybuddy_backend/internal/util"
	"studybuddy_backend/pkg/logger"
	"studybuddy_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompletionStatus string

const (
	StatusRejected            CompletionStatus = "rejected"
	StatusAccepted            CompletionStatus = "accepted"
	StatusAcceptedCertificate CompletionStatus = "accepted_certificate"
)

// CompletionResult is the single tagged outcome of a completion
// attempt; the presentation layer dispatches on Status instead of
// following redirects.
type CompletionResult struct {
	Status           CompletionStatus   `json:"status"`
	Reason           string             `json:"reason,omitempty"`
	Score            int                `json:"score,omitempty"`
	Total            int                `json:"total,omitempty"`
	PointsAwarded    int                `json:"pointsAwarded"`
	AlreadyCompleted bool               `json:"alreadyCompleted"`
	Certificate      *model.Certificate `json:"certificate,omitempty"`
}

// CompletionService runs the completion pipeline: one evaluator decides
// the verdict, then the ledger, scoring and the course-completion
// detector run in order. Each request is an independent unit of work.
type CompletionService struct {
	GoalRepo     *repository.GoalRepository
	ProgressRepo *repository.ProgressRepository
	Scoring      *ScoringService
	Certificates *CertificateService

	directMark Evaluator
	quizGrader Evaluator
	practical  Evaluator
}

func NewCompletionService(
	goalRepo *repository.GoalRepository,
	progressRepo *repository.ProgressRepository,
	scoring *ScoringService,
	certificates *CertificateService,
) *CompletionService {
	return &CompletionService{
		GoalRepo:     goalRepo,
		ProgressRepo: progressRepo,
		Scoring:      scoring,
		Certificates: certificates,
		directMark:   DirectMarkEvaluator{},
		quizGrader:   QuizGraderEvaluator{},
		practical:    PracticalValidatorEvaluator{},
	}
}

// MarkComplete completes a goal with no verifiable criterion.
func (s *CompletionService) MarkComplete(userID, goalID uint) (*CompletionResult, error) {
	return s.run(userID, goalID, s.directMark, Submission{})
}

// SubmitQuiz grades the answer set against the goal's quiz; 100% is
// required to pass.
func (s *CompletionService) SubmitQuiz(userID, goalID uint, answers map[uint]int) (*CompletionResult, error) {
	return s.run(userID, goalID, s.quizGrader, Submission{Answers: answers})
}

// SubmitPractical validates submitted code against the goal's practical
// challenge.
func (s *CompletionService) SubmitPractical(userID, goalID uint, code string) (*CompletionResult, error) {
	return s.run(userID, goalID, s.practical, Submission{Code: code})
}

func (s *CompletionService) run(userID, goalID uint, evaluator Evaluator, sub Submission) (*CompletionResult, error) {
	goal, err := s.GoalRepo.FindByIDForEvaluation(goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGoalNotFound
		}
		return nil, err
	}

	outcome, err := evaluator.Evaluate(goal, sub)
	if err != nil {
		return nil, err
	}

	if !outcome.Accepted {
		return &CompletionResult{
			Status: StatusRejected,
			Reason: outcome.Reason,
			Score:  outcome.Score,
			Total:  outcome.Total,
		}, nil
	}

	result := &CompletionResult{
		Status: StatusAccepted,
		Score:  outcome.Score,
		Total:  outcome.Total,
	}

	created, err := s.ProgressRepo.RecordCompletion(userID, goal.ID)
	if err != nil {
		return nil, err
	}
	if !created {
		// Duplicate submission: benign, nothing more to do.
		result.AlreadyCompleted = true
		return result, nil
	}

	if err := s.Scoring.Award(userID, goal.Points); err != nil {
		return nil, err
	}
	result.PointsAwarded = goal.Points
	monitoring.GoalCompletions.Inc()

	logger.Log.Info("goal completed",
		zap.Uint("userId", userID),
		zap.Uint("goalId", goal.ID),
		zap.Int("points", goal.Points))

	cert, err := s.Certificates.CheckSubjectCompletion(userID, goal.SubjectID)
	if err != nil {
		return nil, err
	}
	if cert != nil {
		result.Status = StatusAcceptedCertificate
		result.Certificate = cert
	}

	return result, nil
}
