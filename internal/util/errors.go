package util

import "errors"

var (
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrSubjectNotFound     = errors.New("subject not found")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrChallengeNotFound   = errors.New("goal has no practical challenge")
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrCertificateExists   = errors.New("certificate already issued for this subject")
	ErrEntryNotFound       = errors.New("journal entry not found")
)
