package model

// PracticalChallenge is an interactive code exercise owned by exactly
// one goal. Validation is a case-insensitive substring check of
// ValidationText against the submitted code; this is a deliberate
// heuristic, not an interpreter.
type PracticalChallenge struct {
	BaseModel
	GoalID         uint   `gorm:"uniqueIndex;not null" json:"goalId"`
	Instruction    string `gorm:"type:text;not null" json:"instruction"`
	StarterCode    string `gorm:"type:text" json:"starterCode"`
	Hint           string `gorm:"type:text" json:"hint"`
	ValidationText string `gorm:"size:100;not null" json:"-"`
}

func (PracticalChallenge) TableName() string {
	return "practical_challenges"
}
