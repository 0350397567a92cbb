package model

// Subject is an admin-authored course. It owns the materials a learner
// studies and the goals that must all be completed before a certificate
// is issued.
type Subject struct {
	BaseModel
	Name        string     `gorm:"size:100;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Materials   []Material `gorm:"foreignKey:SubjectID" json:"materials,omitempty"`
	Goals       []Goal     `gorm:"foreignKey:SubjectID" json:"goals,omitempty"`
}

func (Subject) TableName() string {
	return "subjects"
}
