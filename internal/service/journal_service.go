package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"studybuddy_backend/internal/model"
	"studybuddy_backend/internal/repository"
	"studybuddy_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// JournalService handles the learner's study-session log.
type JournalService struct {
	JournalRepo *repository.JournalRepository
	Storage     *StorageService
}

func NewJournalService(journalRepo *repository.JournalRepository, storage *StorageService) *JournalService {
	return &JournalService{JournalRepo: journalRepo, Storage: storage}
}

type JournalEntryRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"` // "2006-01-02"
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

func (s *JournalService) ListEntries(userID uint) ([]model.JournalEntry, error) {
	return s.JournalRepo.FindByUserID(userID)
}

func (s *JournalService) CreateEntry(userID uint, req JournalEntryRequest) (*model.JournalEntry, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	entry := &model.JournalEntry{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	if err := s.JournalRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *JournalService) UpdateEntry(userID, entryID uint, req JournalEntryRequest) (*model.JournalEntry, error) {
	entry, err := s.JournalRepo.FindByIDAndUser(entryID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEntryNotFound
		}
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	entry.Title = req.Title
	entry.Description = req.Description
	entry.Date = date
	entry.StartTime = req.StartTime
	entry.EndTime = req.EndTime

	if err := s.JournalRepo.Save(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *JournalService) DeleteEntry(userID, entryID uint) error {
	if _, err := s.JournalRepo.FindByIDAndUser(entryID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrEntryNotFound
		}
		return err
	}
	return s.JournalRepo.Delete(entryID, userID)
}

// AttachImage stores an uploaded photo and links it to the entry.
func (s *JournalService) AttachImage(ctx context.Context, userID, entryID uint, reader io.Reader, size int64, contentType string) (string, error) {
	entry, err := s.JournalRepo.FindByIDAndUser(entryID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrEntryNotFound
		}
		return "", err
	}

	path := fmt.Sprintf("journal_images/%d_%d.png", entryID, time.Now().UnixNano())
	url, err := s.Storage.Upload(ctx, path, reader, size, contentType)
	if err != nil {
		return "", err
	}

	entry.Image = path
	if err := s.JournalRepo.Save(entry); err != nil {
		return "", err
	}
	return url, nil
}
