package repository

import (
	"studybuddy_backend/internal/model"

	"gorm.io/gorm"
)

type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(goal *model.Goal) error {
	return r.DB.Create(goal).Error
}

func (r *GoalRepository) FindByID(id uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.DB.First(&goal, id).Error
	return &goal, err
}

// FindByIDForEvaluation loads a goal with everything the completion
// evaluators need: its quiz questions and its practical challenge.
func (r *GoalRepository) FindByIDForEvaluation(id uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.DB.
		Preload("Questions").
		Preload("Challenge").
		First(&goal, id).Error
	return &goal, err
}

func (r *GoalRepository) FindBySubjectID(subjectID uint) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.DB.Where("subject_id = ?", subjectID).Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) CountBySubject(subjectID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Goal{}).
		Where("subject_id = ?", subjectID).
		Count(&count).Error
	return count, err
}

func (r *GoalRepository) Update(goal *model.Goal) error {
	return r.DB.Model(&model.Goal{}).
		Where("id = ?", goal.ID).
		Updates(map[string]interface{}{
			"description": goal.Description,
			"points":      goal.Points,
		}).Error
}

func (r *GoalRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Goal{}, id).Error
}
