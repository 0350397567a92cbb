package repository

import (
	"studybuddy_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressRepository is the progress ledger: the source of truth for
// which goals a user has completed.
type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// RecordCompletion inserts the completion record for (user, goal) if
// absent. The insert rides on the composite unique index with a
// conflict-ignore clause, so two concurrent submissions cannot both see
// created=true; there is no read-then-write window. created=false means
// the goal was already completed, which callers treat as a benign
// no-op.
func (r *ProgressRepository) RecordCompletion(userID, goalID uint) (created bool, err error) {
	now := time.Now()
	record := &model.ProgressRecord{
		UserID:      userID,
		GoalID:      goalID,
		IsCompleted: true,
		CompletedAt: &now,
	}

	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "goal_id"}},
		DoNothing: true,
	}).Create(record)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *ProgressRepository) HasCompleted(userID, goalID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ProgressRecord{}).
		Where("user_id = ? AND goal_id = ? AND is_completed = ?", userID, goalID, true).
		Count(&count).Error
	return count > 0, err
}

// CountCompletedInSubject counts the user's completed goals within a
// single subject, for the course-completion check. Ledger rows whose
// goal has since been removed do not count, so the completed total can
// never exceed the live-goal total.
func (r *ProgressRepository) CountCompletedInSubject(userID, subjectID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ProgressRecord{}).
		Joins("JOIN goals ON goals.id = progress_records.goal_id AND goals.deleted_at IS NULL").
		Where("progress_records.user_id = ? AND progress_records.is_completed = ? AND goals.subject_id = ?",
			userID, true, subjectID).
		Count(&count).Error
	return count, err
}

// CompletedGoalIDs lists the user's completed goal IDs within a
// subject, for rendering the subject page.
func (r *ProgressRepository) CompletedGoalIDs(userID, subjectID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.ProgressRecord{}).
		Joins("JOIN goals ON goals.id = progress_records.goal_id AND goals.deleted_at IS NULL").
		Where("progress_records.user_id = ? AND progress_records.is_completed = ? AND goals.subject_id = ?",
			userID, true, subjectID).
		Pluck("progress_records.goal_id", &ids).Error
	return ids, err
}
