package model

// Question is a single multiple-choice quiz question. CorrectOption is
// 1-based, matching the option fields.
type Question struct {
	BaseModel
	GoalID        uint   `gorm:"index;not null" json:"goalId"`
	QuestionText  string `gorm:"size:500;not null" json:"questionText"`
	Option1       string `gorm:"size:200;not null" json:"option1"`
	Option2       string `gorm:"size:200;not null" json:"option2"`
	Option3       string `gorm:"size:200;not null" json:"option3"`
	Option4       string `gorm:"size:200;not null" json:"option4"`
	CorrectOption int    `gorm:"not null" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}
