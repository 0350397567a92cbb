package model

import (
	"regexp"
	"strings"
)

type ContentType string

const (
	ContentVideo   ContentType = "video"
	ContentPDF     ContentType = "pdf"
	ContentArticle ContentType = "article"
)

// Material is read-only reference content attached to a subject.
type Material struct {
	BaseModel
	SubjectID   uint        `gorm:"index;not null" json:"subjectId"`
	Title       string      `gorm:"size:200;not null" json:"title"`
	Link        string      `gorm:"size:500;not null" json:"link"`
	ContentType ContentType `gorm:"size:20;not null" json:"contentType"`
}

func (Material) TableName() string {
	return "materials"
}

var youtubeIDPattern = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`)

// EmbedURL rewrites well-known viewer links into their embeddable form
// so the frontend can iframe them. YouTube watch/short links become
// embed links, Google Drive viewer links become preview links; anything
// else is returned unchanged.
func (m *Material) EmbedURL() string {
	if strings.Contains(m.Link, "youtube.com") || strings.Contains(m.Link, "youtu.be") {
		if match := youtubeIDPattern.FindStringSubmatch(m.Link); match != nil {
			return "https://www.youtube.com/embed/" + match[1] + "?rel=0&modestbranding=1"
		}
	}

	if strings.Contains(m.Link, "drive.google.com") && strings.Contains(m.Link, "/view") {
		return strings.Replace(m.Link, "/view", "/preview", 1)
	}

	return m.Link
}
