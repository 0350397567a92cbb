package service

import (
	"errors"
	"studybuddy_backend/internal/model"
	"studybuddy_backend/internal/repository"
	"studybuddy_backend/internal/util"

	"gorm.io/gorm"
)

// ContentService serves the admin-authored subject catalog and the
// learner's view of a subject page.
type ContentService struct {
	SubjectRepo   *repository.SubjectRepository
	MaterialRepo  *repository.MaterialRepository
	GoalRepo      *repository.GoalRepository
	QuestionRepo  *repository.QuestionRepository
	ChallengeRepo *repository.ChallengeRepository
	ProgressRepo  *repository.ProgressRepository
}

func NewContentService(
	subjectRepo *repository.SubjectRepository,
	materialRepo *repository.MaterialRepository,
	goalRepo *repository.GoalRepository,
	questionRepo *repository.QuestionRepository,
	challengeRepo *repository.ChallengeRepository,
	progressRepo *repository.ProgressRepository,
) *ContentService {
	return &ContentService{
		SubjectRepo:   subjectRepo,
		MaterialRepo:  materialRepo,
		GoalRepo:      goalRepo,
		QuestionRepo:  questionRepo,
		ChallengeRepo: challengeRepo,
		ProgressRepo:  progressRepo,
	}
}

// MaterialView is a material plus its embed-rewritten link.
type MaterialView struct {
	model.Material
	EmbedLink string `json:"embedLink"`
}

// SubjectDetail is everything the subject page shows: materials, goals
// and which of those goals the requesting user already finished.
type SubjectDetail struct {
	Subject          model.Subject  `json:"subject"`
	Materials        []MaterialView `json:"materials"`
	Goals            []model.Goal   `json:"goals"`
	CompletedGoalIDs []uint         `json:"completedGoalIds"`
}

func (s *ContentService) ListSubjects() ([]model.Subject, error) {
	return s.SubjectRepo.FindAll()
}

func (s *ContentService) GetSubjectDetail(userID, subjectID uint) (*SubjectDetail, error) {
	subject, err := s.SubjectRepo.FindByIDWithContent(subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubjectNotFound
		}
		return nil, err
	}

	materials := make([]MaterialView, len(subject.Materials))
	for i, m := range subject.Materials {
		materials[i] = MaterialView{Material: m, EmbedLink: m.EmbedURL()}
	}

	completedIDs, err := s.ProgressRepo.CompletedGoalIDs(userID, subjectID)
	if err != nil {
		return nil, err
	}

	detail := &SubjectDetail{
		Subject:          model.Subject{BaseModel: subject.BaseModel, Name: subject.Name, Description: subject.Description},
		Materials:        materials,
		Goals:            subject.Goals,
		CompletedGoalIDs: completedIDs,
	}
	return detail, nil
}

func (s *ContentService) GetChallengeByGoal(goalID uint) (*model.PracticalChallenge, error) {
	challenge, err := s.ChallengeRepo.FindByGoalID(goalID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrChallengeNotFound
	}
	return challenge, err
}

// Admin-side content management; replaces the original admin screens.

func (s *ContentService) CreateSubject(subject *model.Subject) error {
	return s.SubjectRepo.Create(subject)
}

func (s *ContentService) UpdateSubject(subject *model.Subject) error {
	if _, err := s.SubjectRepo.FindByID(subject.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSubjectNotFound
		}
		return err
	}
	return s.SubjectRepo.Update(subject)
}

func (s *ContentService) DeleteSubject(id uint) error {
	return s.SubjectRepo.Delete(id)
}

func (s *ContentService) CreateMaterial(material *model.Material) error {
	if _, err := s.SubjectRepo.FindByID(material.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSubjectNotFound
		}
		return err
	}
	return s.MaterialRepo.Create(material)
}

func (s *ContentService) DeleteMaterial(id uint) error {
	return s.MaterialRepo.Delete(id)
}

func (s *ContentService) CreateGoal(goal *model.Goal) error {
	if _, err := s.SubjectRepo.FindByID(goal.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSubjectNotFound
		}
		return err
	}
	return s.GoalRepo.Create(goal)
}

func (s *ContentService) DeleteGoal(id uint) error {
	return s.GoalRepo.Delete(id)
}

func (s *ContentService) CreateQuestion(question *model.Question) error {
	if _, err := s.GoalRepo.FindByID(question.GoalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrGoalNotFound
		}
		return err
	}
	return s.QuestionRepo.Create(question)
}

func (s *ContentService) CreateChallenge(challenge *model.PracticalChallenge) error {
	if _, err := s.GoalRepo.FindByID(challenge.GoalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrGoalNotFound
		}
		return err
	}
	return s.ChallengeRepo.Create(challenge)
}
