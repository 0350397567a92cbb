package repository

import (
	"errors"
	"studybuddy_backend/internal/model"
	"studybuddy_backend/internal/util"
	"testing"
	"time"
)

func TestCertificateCreateRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewCertificateRepository(db)

	cert := &model.Certificate{UserID: 1, SubjectID: 2, IssuedAt: time.Now(), ImagePath: "certificates/a.png"}
	if err := repo.Create(cert); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := &model.Certificate{UserID: 1, SubjectID: 2, IssuedAt: time.Now(), ImagePath: "certificates/b.png"}
	if err := repo.Create(dup); !errors.Is(err, util.ErrCertificateExists) {
		t.Fatalf("expected ErrCertificateExists, got %v", err)
	}

	// Same user, different subject is fine.
	other := &model.Certificate{UserID: 1, SubjectID: 3, IssuedAt: time.Now(), ImagePath: "certificates/c.png"}
	if err := repo.Create(other); err != nil {
		t.Fatalf("Create for another subject: %v", err)
	}
}

func TestCertificateLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewCertificateRepository(db)

	cert := &model.Certificate{UserID: 9, SubjectID: 4, IssuedAt: time.Now(), ImagePath: "certificates/x.png"}
	if err := repo.Create(cert); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if cert.ID == "" {
		t.Fatal("certificate should get a UUID on create")
	}

	byID, err := repo.FindByID(cert.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if byID.ImagePath != cert.ImagePath {
		t.Errorf("FindByID returned wrong record: %+v", byID)
	}

	if _, err := repo.FindByUserAndSubject(9, 4); err != nil {
		t.Fatalf("FindByUserAndSubject: %v", err)
	}

	mine, err := repo.FindByUserID(9)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("expected 1 certificate, got %d", len(mine))
	}
}
