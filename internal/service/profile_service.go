package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"studybuddy_backend/internal/repository"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	leaderboardCacheKey = "studybuddy:leaderboard"
	leaderboardCacheTTL = time.Minute
	leaderboardSize     = 5
)

type ProfileService struct {
	ProfileRepo *repository.ProfileRepository
	UserRepo    *repository.UserRepository
	Storage     *StorageService
	Redis       *redis.Client
}

func NewProfileService(profileRepo *repository.ProfileRepository, userRepo *repository.UserRepository, storage *StorageService, rdb *redis.Client) *ProfileService {
	return &ProfileService{
		ProfileRepo: profileRepo,
		UserRepo:    userRepo,
		Storage:     storage,
		Redis:       rdb,
	}
}

type ProfileView struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	TotalScore int    `json:"totalScore"`
	Bio        string `json:"bio"`
	Picture    string `json:"picture"`
}

type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	TotalScore int    `json:"totalScore"`
}

type ProfileUpdateRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

func (s *ProfileService) GetProfile(userID uint) (*ProfileView, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	profile, _, err := s.ProfileRepo.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}

	return &ProfileView{
		Name:       user.Name,
		Email:      user.Email,
		TotalScore: profile.TotalScore,
		Bio:        profile.Bio,
		Picture:    profile.Picture,
	}, nil
}

func (s *ProfileService) UpdateProfile(userID uint, req ProfileUpdateRequest) (*ProfileView, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if req.Name != "" && req.Name != user.Name {
		user.Name = req.Name
		if err := s.UserRepo.Update(user); err != nil {
			return nil, err
		}
	}

	profile, _, err := s.ProfileRepo.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}
	profile.Bio = req.Bio
	if err := s.ProfileRepo.Update(profile); err != nil {
		return nil, err
	}

	return s.GetProfile(userID)
}

// UploadPicture stores a new profile picture and records its path.
func (s *ProfileService) UploadPicture(ctx context.Context, userID uint, reader io.Reader, size int64, contentType string) (string, error) {
	profile, _, err := s.ProfileRepo.GetOrCreateByUserID(userID)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("profile_pics/%d_%d.png", userID, time.Now().UnixNano())
	url, err := s.Storage.Upload(ctx, path, reader, size, contentType)
	if err != nil {
		return "", err
	}

	profile.Picture = path
	if err := s.ProfileRepo.Update(profile); err != nil {
		return "", err
	}
	return url, nil
}

// GetLeaderboard returns the top profiles by total score. The result is
// cached in redis for a minute; without redis it falls through to the
// database every time.
func (s *ProfileService) GetLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Result(); err == nil {
			var entries []LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
		}
	}

	profiles, err := s.ProfileRepo.TopByScore(leaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(profiles))
	for i, p := range profiles {
		entries[i] = LeaderboardEntry{
			Rank:       i + 1,
			Name:       p.User.Name,
			TotalScore: p.TotalScore,
		}
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(entries); err == nil {
			s.Redis.Set(ctx, leaderboardCacheKey, raw, leaderboardCacheTTL)
		}
	}

	return entries, nil
}
