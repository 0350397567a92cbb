package model

import "time"

// ProgressRecord is durable proof that a user completed a goal. The
// composite unique index is the idempotence guarantee: a second insert
// for the same (user, goal) pair is rejected by the database, so points
// can never be awarded twice. Records are never deleted or reverted.
type ProgressRecord struct {
	BaseModel
	UserID      uint       `gorm:"uniqueIndex:idx_user_goal;not null" json:"userId"`
	GoalID      uint       `gorm:"uniqueIndex:idx_user_goal;not null" json:"goalId"`
	IsCompleted bool       `gorm:"not null;default:true" json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt"`
}

func (ProgressRecord) TableName() string {
	return "progress_records"
}
