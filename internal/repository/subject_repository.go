package repository

import (
	"studybuddy_backend/internal/model"

	"gorm.io/gorm"
)

type SubjectRepository struct {
	DB *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) Create(subject *model.Subject) error {
	return r.DB.Create(subject).Error
}

func (r *SubjectRepository) FindAll() ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.Order("name").Find(&subjects).Error
	return subjects, err
}

func (r *SubjectRepository) FindByID(id uint) (*model.Subject, error) {
	var subject model.Subject
	err := r.DB.First(&subject, id).Error
	return &subject, err
}

// FindByIDWithContent loads a subject together with its materials and
// goals (quiz questions and challenge included), as shown on the
// subject page.
func (r *SubjectRepository) FindByIDWithContent(id uint) (*model.Subject, error) {
	var subject model.Subject
	err := r.DB.
		Preload("Materials").
		Preload("Goals").
		Preload("Goals.Questions").
		Preload("Goals.Challenge").
		First(&subject, id).Error
	return &subject, err
}

func (r *SubjectRepository) Update(subject *model.Subject) error {
	return r.DB.Model(&model.Subject{}).
		Where("id = ?", subject.ID).
		Updates(map[string]interface{}{
			"name":        subject.Name,
			"description": subject.Description,
		}).Error
}

func (r *SubjectRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Subject{}, id).Error
}
