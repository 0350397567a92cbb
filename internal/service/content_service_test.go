package service

import (
	"errors"
	"studybuddy_backend/internal/model"
	"studybuddy_backend/internal/repository"
	"studybuddy_backend/internal/util"
	"testing"

	"gorm.io/gorm"
)

func newContentService(t *testing.T) (*ContentService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewContentService(
		repository.NewSubjectRepository(db),
		repository.NewMaterialRepository(db),
		repository.NewGoalRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewChallengeRepository(db),
		repository.NewProgressRepository(db),
	)
	return svc, db
}

func TestGetSubjectDetail(t *testing.T) {
	svc, db := newContentService(t)

	subject := model.Subject{
		Name: "Web Development",
		Materials: []model.Material{
			{Title: "HTML course", ContentType: model.ContentVideo, Link: "https://www.youtube.com/watch?v=k_K9TMJ-Y6w"},
		},
		Goals: []model.Goal{
			{Description: "first", Points: 10},
			{Description: "second", Points: 15},
		},
	}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}

	progress := repository.NewProgressRepository(db)
	if _, err := progress.RecordCompletion(42, subject.Goals[0].ID); err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}

	detail, err := svc.GetSubjectDetail(42, subject.ID)
	if err != nil {
		t.Fatalf("GetSubjectDetail: %v", err)
	}
	if len(detail.Materials) != 1 {
		t.Fatalf("expected 1 material, got %d", len(detail.Materials))
	}
	if detail.Materials[0].EmbedLink != "https://www.youtube.com/embed/k_K9TMJ-Y6w?rel=0&modestbranding=1" {
		t.Errorf("embed link not rewritten: %q", detail.Materials[0].EmbedLink)
	}
	if len(detail.Goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(detail.Goals))
	}
	if len(detail.CompletedGoalIDs) != 1 || detail.CompletedGoalIDs[0] != subject.Goals[0].ID {
		t.Errorf("completed goal IDs wrong: %v", detail.CompletedGoalIDs)
	}
}

func TestGetSubjectDetailMissingSubject(t *testing.T) {
	svc, _ := newContentService(t)

	if _, err := svc.GetSubjectDetail(1, 999); !errors.Is(err, util.ErrSubjectNotFound) {
		t.Fatalf("expected ErrSubjectNotFound, got %v", err)
	}
}

func TestGetChallengeByGoal(t *testing.T) {
	svc, db := newContentService(t)

	subject := model.Subject{
		Name: "CSS",
		Goals: []model.Goal{{
			Description: "flexbox layout",
			Points:      20,
			Challenge: &model.PracticalChallenge{
				Instruction:    "Center a div with flexbox",
				ValidationText: "display: flex",
			},
		}},
	}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}

	challenge, err := svc.GetChallengeByGoal(subject.Goals[0].ID)
	if err != nil {
		t.Fatalf("GetChallengeByGoal: %v", err)
	}
	if challenge.Instruction != "Center a div with flexbox" {
		t.Errorf("wrong challenge: %+v", challenge)
	}

	if _, err := svc.GetChallengeByGoal(999); !errors.Is(err, util.ErrChallengeNotFound) {
		t.Fatalf("expected ErrChallengeNotFound, got %v", err)
	}
}

func TestAdminCreateValidatesParents(t *testing.T) {
	svc, _ := newContentService(t)

	err := svc.CreateGoal(&model.Goal{SubjectID: 999, Description: "orphan"})
	if !errors.Is(err, util.ErrSubjectNotFound) {
		t.Fatalf("expected ErrSubjectNotFound, got %v", err)
	}

	err = svc.CreateQuestion(&model.Question{GoalID: 999, QuestionText: "orphan"})
	if !errors.Is(err, util.ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}

	err = svc.CreateChallenge(&model.PracticalChallenge{GoalID: 999, Instruction: "orphan"})
	if !errors.Is(err, util.ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}
