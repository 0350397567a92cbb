package model

import "time"

// JournalEntry is a study-session log the learner keeps alongside their
// progress. StartTime and EndTime are clock times in "15:04" form.
type JournalEntry struct {
	BaseModel
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	StartTime   string    `gorm:"size:8" json:"startTime"`
	EndTime     string    `gorm:"size:8" json:"endTime"`
	Image       string    `gorm:"size:255" json:"image"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}
