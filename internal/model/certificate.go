package model

import "time"

// Certificate proves full completion of a subject. At most one exists
// per (user, subject); once issued it is immutable. The ID doubles as
// the public share token, hence the UUID primary key.
type Certificate struct {
	UUIDBase
	UserID    uint      `gorm:"uniqueIndex:idx_user_subject;not null" json:"userId"`
	SubjectID uint      `gorm:"uniqueIndex:idx_user_subject;not null" json:"subjectId"`
	IssuedAt  time.Time `gorm:"not null" json:"issuedAt"`
	ImagePath string    `gorm:"size:255;not null" json:"imagePath"`
}

func (Certificate) TableName() string {
	return "certificates"
}
