package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"studybuddy_backend/internal/model"
	"studybuddy_backend/internal/repository"
	"studybuddy_backend/internal/util"
	"studybuddy_backend/pkg/logger"
	"studybuddy_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CertificateRenderer produces the certificate image. The core treats
// it as a pure function of the three display strings.
type CertificateRenderer interface {
	Render(displayName, subjectName, issuedDate string) ([]byte, error)
}

// CertificateService detects full-subject completion and issues the
// completion certificate exactly once per (user, subject).
type CertificateService struct {
	CertRepo     *repository.CertificateRepository
	GoalRepo     *repository.GoalRepository
	ProgressRepo *repository.ProgressRepository
	UserRepo     *repository.UserRepository
	SubjectRepo  *repository.SubjectRepository
	Renderer     CertificateRenderer
	Storage      *StorageService
}

func NewCertificateService(
	certRepo *repository.CertificateRepository,
	goalRepo *repository.GoalRepository,
	progressRepo *repository.ProgressRepository,
	userRepo *repository.UserRepository,
	subjectRepo *repository.SubjectRepository,
	renderer CertificateRenderer,
	storage *StorageService,
) *CertificateService {
	return &CertificateService{
		CertRepo:     certRepo,
		GoalRepo:     goalRepo,
		ProgressRepo: progressRepo,
		UserRepo:     userRepo,
		SubjectRepo:  subjectRepo,
		Renderer:     renderer,
		Storage:      storage,
	}
}

// CheckSubjectCompletion recounts the user's completed goals within the
// subject and issues a certificate on the transition into the
// fully-complete state. Returns nil when the subject is not yet
// complete, has no goals, or a certificate already exists.
//
// The recount is deliberate: goal counts per subject are small and
// recounting keeps the ledger the single source of truth.
func (s *CertificateService) CheckSubjectCompletion(userID, subjectID uint) (*model.Certificate, error) {
	totalGoals, err := s.GoalRepo.CountBySubject(subjectID)
	if err != nil {
		return nil, err
	}
	if totalGoals == 0 {
		return nil, nil
	}

	completedGoals, err := s.ProgressRepo.CountCompletedInSubject(userID, subjectID)
	if err != nil {
		return nil, err
	}
	if completedGoals != totalGoals {
		return nil, nil
	}

	_, err = s.CertRepo.FindByUserAndSubject(userID, subjectID)
	if err == nil {
		// Already certified, nothing new to issue.
		return nil, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.Issue(userID, subjectID)
}

// Issue renders the certificate image, stores the artifact, then
// creates the record. Issuance is all-or-nothing: a record is never
// persisted without its image, and a rendering or upload failure leaves
// no trace. A duplicate insert means the detector's existence check was
// raced past; it is logged and the orphaned artifact removed.
func (s *CertificateService) Issue(userID, subjectID uint) (*model.Certificate, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	subject, err := s.SubjectRepo.FindByID(subjectID)
	if err != nil {
		return nil, err
	}

	issuedAt := time.Now()
	image, err := s.Renderer.Render(user.Name, subject.Name, issuedAt.Format("January 2, 2006"))
	if err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}

	cert := &model.Certificate{
		UserID:    userID,
		SubjectID: subjectID,
		IssuedAt:  issuedAt,
	}
	cert.ID = model.GenerateUUID()
	cert.ImagePath = fmt.Sprintf("certificates/%s.png", cert.ID)

	ctx := context.Background()
	if _, err := s.Storage.Upload(ctx, cert.ImagePath, bytes.NewReader(image), int64(len(image)), "image/png"); err != nil {
		return nil, fmt.Errorf("store certificate image: %w", err)
	}

	if err := s.CertRepo.Create(cert); err != nil {
		if errors.Is(err, util.ErrCertificateExists) {
			logger.Log.Error("duplicate certificate issuance blocked",
				zap.Uint("userId", userID),
				zap.Uint("subjectId", subjectID))
			if delErr := s.Storage.Delete(ctx, cert.ImagePath); delErr != nil {
				logger.Log.Warn("failed to remove orphaned certificate image",
					zap.String("path", cert.ImagePath),
					zap.Error(delErr))
			}
		}
		return nil, err
	}

	monitoring.CertificatesIssued.Inc()
	logger.Log.Info("certificate issued",
		zap.String("certificateId", cert.ID),
		zap.Uint("userId", userID),
		zap.Uint("subjectId", subjectID))

	return cert, nil
}

func (s *CertificateService) GetByID(id string) (*model.Certificate, error) {
	cert, err := s.CertRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCertificateNotFound
	}
	return cert, err
}

func (s *CertificateService) ListByUser(userID uint) ([]model.Certificate, error) {
	return s.CertRepo.FindByUserID(userID)
}

// ImageURL resolves the public URL of a certificate's stored image.
func (s *CertificateService) ImageURL(cert *model.Certificate) string {
	return s.Storage.GetURL(cert.ImagePath)
}
