package repository

import (
	"studybuddy_backend/internal/model"

	"gorm.io/gorm"
)

type JournalRepository struct {
	DB *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{DB: db}
}

func (r *JournalRepository) Create(entry *model.JournalEntry) error {
	return r.DB.Create(entry).Error
}

func (r *JournalRepository) FindByUserID(userID uint) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	err := r.DB.Where("user_id = ?", userID).
		Order("date DESC, start_time").
		Find(&entries).Error
	return entries, err
}

func (r *JournalRepository) FindByIDAndUser(id, userID uint) (*model.JournalEntry, error) {
	var entry model.JournalEntry
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	return &entry, err
}

func (r *JournalRepository) Save(entry *model.JournalEntry) error {
	return r.DB.Save(entry).Error
}

func (r *JournalRepository) Delete(id, userID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.JournalEntry{}).Error
}
