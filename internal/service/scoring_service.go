package service

import "studybuddy_backend/internal/repository"

// ScoringService applies point awards to the user's profile. Awarding
// is not idempotent by itself; callers must gate it on the progress
// ledger's created flag so a goal is scored at most once.
type ScoringService struct {
	ProfileRepo *repository.ProfileRepository
}

func NewScoringService(profileRepo *repository.ProfileRepository) *ScoringService {
	return &ScoringService{ProfileRepo: profileRepo}
}

// Award ensures the profile exists, then bumps total_score by points
// with an atomic database increment.
func (s *ScoringService) Award(userID uint, points int) error {
	if _, _, err := s.ProfileRepo.GetOrCreateByUserID(userID); err != nil {
		return err
	}
	return s.ProfileRepo.AddScore(userID, points)
}
