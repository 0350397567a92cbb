package repository

import (
	"studybuddy_backend/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

// GetOrCreateByUserID returns the user's profile, creating a zero-score
// one if none exists yet. The second return value reports whether a new
// row was created.
func (r *ProfileRepository) GetOrCreateByUserID(userID uint) (*model.Profile, bool, error) {
	var profile model.Profile
	res := r.DB.Where(model.Profile{UserID: userID}).FirstOrCreate(&profile)
	if res.Error != nil {
		return nil, false, res.Error
	}
	return &profile, res.RowsAffected == 1, nil
}

// AddScore applies a point award as a single atomic increment at the
// database, so concurrent awards for different goals cannot lose
// updates to a read-modify-write race.
func (r *ProfileRepository) AddScore(userID uint, points int) error {
	return r.DB.Model(&model.Profile{}).
		Where("user_id = ?", userID).
		UpdateColumn("total_score", gorm.Expr("total_score + ?", points)).
		Error
}

func (r *ProfileRepository) FindByUserID(userID uint) (*model.Profile, error) {
	var profile model.Profile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

func (r *ProfileRepository) Update(profile *model.Profile) error {
	return r.DB.Model(&model.Profile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"bio":     profile.Bio,
			"picture": profile.Picture,
		}).Error
}

func (r *ProfileRepository) TopByScore(limit int) ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.DB.Preload("User").
		Order("total_score DESC").
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}
