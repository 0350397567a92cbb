package repository

import (
	"studybuddy_backend/internal/model"
	"studybuddy_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

// Create inserts the certificate, guarded by the (user_id, subject_id)
// unique index. A conflicting insert returns ErrCertificateExists
// instead of overwriting; the issuer treats that as a should-not-happen
// invariant violation.
func (r *CertificateRepository) Create(cert *model.Certificate) error {
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "subject_id"}},
		DoNothing: true,
	}).Create(cert)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrCertificateExists
	}
	return nil
}

func (r *CertificateRepository) FindByID(id string) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.DB.Where("id = ?", id).First(&cert).Error
	return &cert, err
}

func (r *CertificateRepository) FindByUserAndSubject(userID, subjectID uint) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.DB.Where("user_id = ? AND subject_id = ?", userID, subjectID).First(&cert).Error
	return &cert, err
}

func (r *CertificateRepository) FindByUserID(userID uint) ([]model.Certificate, error) {
	var certs []model.Certificate
	err := r.DB.Where("user_id = ?", userID).Order("issued_at DESC").Find(&certs).Error
	return certs, err
}
