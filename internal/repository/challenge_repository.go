package repository

import (
	"studybuddy_backend/internal/model"

	"gorm.io/gorm"
)

type ChallengeRepository struct {
	DB *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{DB: db}
}

// Create inserts the challenge; the unique index on goal_id enforces
// the one-challenge-per-goal invariant at the database.
func (r *ChallengeRepository) Create(challenge *model.PracticalChallenge) error {
	return r.DB.Create(challenge).Error
}

func (r *ChallengeRepository) FindByGoalID(goalID uint) (*model.PracticalChallenge, error) {
	var challenge model.PracticalChallenge
	err := r.DB.Where("goal_id = ?", goalID).First(&challenge).Error
	return &challenge, err
}

func (r *ChallengeRepository) Delete(id uint) error {
	return r.DB.Delete(&model.PracticalChallenge{}, id).Error
}
