package model

// Profile carries the per-user gamification state. One per user,
// created lazily on first need; TotalScore only ever grows.
type Profile struct {
	BaseModel
	UserID     uint   `gorm:"uniqueIndex;not null" json:"userId"`
	TotalScore int    `gorm:"not null;default:0" json:"totalScore"`
	Bio        string `gorm:"type:text" json:"bio"`
	Picture    string `gorm:"size:255" json:"picture"`
	User       User   `gorm:"foreignKey:UserID" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}
