package database

import (
	"fmt"
	"log"
	"studybuddy_backend/internal/config"
	"studybuddy_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedSubjects(db)

	return db, nil
}

// Migrate creates or updates the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Subject{},
		&model.Material{},
		&model.Goal{},
		&model.Question{},
		&model.PracticalChallenge{},
		&model.ProgressRecord{},
		&model.Certificate{},
		&model.JournalEntry{},
	)
}

// seedSubjects inserts the starter catalog on an empty database so a
// fresh install has something to browse.
func seedSubjects(db *gorm.DB) {
	var count int64
	db.Model(&model.Subject{}).Count(&count)
	if count > 0 {
		return
	}

	subjects := []model.Subject{
		{
			Name:        "Web Development (Modular)",
			Description: "A structured path starting with foundational HTML, moving to CSS styling, and concluding with JavaScript interactivity.",
			Materials: []model.Material{
				{Title: "HTML Full Course for Beginners - Step-by-Step Video", ContentType: model.ContentVideo, Link: "https://www.youtube.com/watch?v=k_K9TMJ-Y6w"},
				{Title: "MDN HTML Reference & Documentation", ContentType: model.ContentArticle, Link: "https://developer.mozilla.org/en-US/docs/Web/HTML"},
				{Title: "CSS Flexbox/Grid Documentation (A Visual Guide)", ContentType: model.ContentArticle, Link: "https://css-tricks.com/snippets/css/a-guide-to-flexbox/"},
				{Title: "The Modern JavaScript Tutorial (Comprehensive Docs)", ContentType: model.ContentArticle, Link: "https://javascript.info/"},
			},
			Goals: []model.Goal{
				{Description: "Build a multi-page website structure using semantic HTML5 tags (e.g., <header>, <main>, <article>, <footer>)", Points: 10},
				{Description: "Style a layout using either CSS Flexbox or CSS Grid for full responsiveness", Points: 15},
				{Description: "Manipulate the DOM by adding, removing, and modifying elements based on user interaction (e.g., a simple To-Do list app)", Points: 25},
			},
		},
		{
			Name:        "Data Science (Python & ML)",
			Description: "A comprehensive journey through Python, Pandas, Data Analysis, and Machine Learning fundamentals.",
			Materials: []model.Material{
				{Title: "Python for Beginners - Full Step-by-Step Playlist", ContentType: model.ContentVideo, Link: "https://learn.microsoft.com/en-us/shows/intro-to-python-development/"},
				{Title: "Data Science Full Course For Beginners (Codebasics Playlist)", ContentType: model.ContentVideo, Link: "https://www.youtube.com/playlist?list=PLeo1K3SDF_yTwfWh4PD7VqFjOqK0hG-VP"},
			},
			Goals: []model.Goal{
				{Description: "Complete the Python basics module and write an object-oriented class", Points: 10},
				{Description: "Clean and pre-process a raw dataset using the Pandas library", Points: 25},
				{Description: "Implement and evaluate a simple Linear Regression model on a dataset", Points: 45},
			},
		},
		{
			Name:        "Graphic Design (Theory & Practice)",
			Description: "Mastering the core principles of visual communication, typography, and composition before diving into tool usage.",
			Materials: []model.Material{
				{Title: "Fundamentals of Graphic Design - Course Modules (Coursera/CalArts)", ContentType: model.ContentArticle, Link: "https://www.coursera.org/learn/fundamentals-of-graphic-design"},
				{Title: "Figma for UI/UX Design - Full Course (Video)", ContentType: model.ContentVideo, Link: "https://www.youtube.com/watch?v=Guo9402l2E0"},
			},
			Goals: []model.Goal{
				{Description: "Explain and apply the principles of Color Theory (e.g., complementary, analogous)", Points: 15},
				{Description: "Design a mobile screen prototype in Figma using a 4-column grid system", Points: 30},
				{Description: "Create a cohesive brand identity (logo, color palette, typography) for a fictional business", Points: 50},
			},
		},
		{
			Name:        "Wildcard: Critical Thinking & Logic",
			Description: "General knowledge focused on developing analytical, logical, and effective decision-making skills applicable to all fields.",
			Materials: []model.Material{
				{Title: "Critical Thinking: The Basics (Playlist)", ContentType: model.ContentVideo, Link: "https://www.youtube.com/playlist?list=PL_J4hVndP-d_b5z550sT64qQk9r81T0V6"},
				{Title: "Introduction to Logic and Arguments (Article)", ContentType: model.ContentArticle, Link: "https://plato.stanford.edu/entries/logic-classical/"},
			},
			Goals: []model.Goal{
				{Description: "Identify the key components (premise and conclusion) of a complex argument", Points: 10},
				{Description: "Write a short essay analyzing a common logical fallacy (e.g., Ad Hominem, Straw Man)", Points: 25},
				{Description: "Apply a decision matrix to evaluate a complex personal or professional choice", Points: 35},
			},
		},
	}

	for i := range subjects {
		db.Create(&subjects[i])
	}

	log.Println("Seeded starter subject catalog")
}
