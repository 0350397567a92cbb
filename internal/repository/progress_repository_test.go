package repository

import (
	"fmt"
	"studybuddy_backend/internal/model"
	"studybuddy_backend/pkg/database"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedSubjectWithGoals(t *testing.T, db *gorm.DB, goalCount int) model.Subject {
	t.Helper()
	subject := model.Subject{Name: "CSS Fundamentals"}
	for i := 0; i < goalCount; i++ {
		subject.Goals = append(subject.Goals, model.Goal{
			Description: fmt.Sprintf("goal %d", i+1),
			Points:      10,
		})
	}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	return subject
}

func TestRecordCompletionIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)
	subject := seedSubjectWithGoals(t, db, 1)
	goalID := subject.Goals[0].ID

	created, err := repo.RecordCompletion(7, goalID)
	if err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}
	if !created {
		t.Fatal("first completion should report created")
	}

	created, err = repo.RecordCompletion(7, goalID)
	if err != nil {
		t.Fatalf("second RecordCompletion: %v", err)
	}
	if created {
		t.Fatal("second completion must not report created")
	}

	var count int64
	db.Model(&model.ProgressRecord{}).Where("user_id = ? AND goal_id = ?", 7, goalID).Count(&count)
	if count != 1 {
		t.Fatalf("expected one ledger row, got %d", count)
	}
}

func TestRecordCompletionIsPerUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)
	subject := seedSubjectWithGoals(t, db, 1)
	goalID := subject.Goals[0].ID

	if created, err := repo.RecordCompletion(1, goalID); err != nil || !created {
		t.Fatalf("user 1: created=%v err=%v", created, err)
	}
	if created, err := repo.RecordCompletion(2, goalID); err != nil || !created {
		t.Fatalf("user 2: created=%v err=%v", created, err)
	}
}

func TestCountCompletedInSubject(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)
	subject := seedSubjectWithGoals(t, db, 3)
	other := seedSubjectWithGoals(t, db, 1)

	for _, g := range subject.Goals[:2] {
		if _, err := repo.RecordCompletion(5, g.ID); err != nil {
			t.Fatalf("RecordCompletion: %v", err)
		}
	}
	// Completion in another subject must not leak into the count.
	if _, err := repo.RecordCompletion(5, other.Goals[0].ID); err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}

	count, err := repo.CountCompletedInSubject(5, subject.ID)
	if err != nil {
		t.Fatalf("CountCompletedInSubject: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 completed goals, got %d", count)
	}

	ids, err := repo.CompletedGoalIDs(5, subject.ID)
	if err != nil {
		t.Fatalf("CompletedGoalIDs: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("expected 2 goal IDs, got %v", ids)
	}
}

func TestRemovedGoalsDropOutOfCompletedCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)
	subject := seedSubjectWithGoals(t, db, 2)

	for _, g := range subject.Goals {
		if _, err := repo.RecordCompletion(5, g.ID); err != nil {
			t.Fatalf("RecordCompletion: %v", err)
		}
	}

	if err := db.Delete(&model.Goal{}, subject.Goals[0].ID).Error; err != nil {
		t.Fatalf("delete goal: %v", err)
	}

	count, err := repo.CountCompletedInSubject(5, subject.ID)
	if err != nil {
		t.Fatalf("CountCompletedInSubject: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 completed goal after removal, got %d", count)
	}

	ids, err := repo.CompletedGoalIDs(5, subject.ID)
	if err != nil {
		t.Fatalf("CompletedGoalIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != subject.Goals[1].ID {
		t.Errorf("expected only the surviving goal ID, got %v", ids)
	}
}
