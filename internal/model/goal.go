package model

// Goal is the unit of completion: a learner finishes a goal by marking
// it done, passing its quiz, or solving its practical challenge. Points
// are awarded exactly once per (user, goal).
type Goal struct {
	BaseModel
	SubjectID   uint                `gorm:"index;not null" json:"subjectId"`
	Description string              `gorm:"size:255;not null" json:"description"`
	Points      int                 `gorm:"not null;default:10" json:"points"`
	Questions   []Question          `gorm:"foreignKey:GoalID" json:"questions,omitempty"`
	Challenge   *PracticalChallenge `gorm:"foreignKey:GoalID" json:"challenge,omitempty"`
}

func (Goal) TableName() string {
	return "goals"
}
