package service

import (
	"fmt"
	"os"
	"studybuddy_backend/internal/config"
	"studybuddy_backend/internal/model"
	"studybuddy_backend/internal/repository"
	"studybuddy_backend/pkg/database"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"studybuddy_backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// stubRenderer stands in for the image renderer so pipeline tests do
// not depend on font rendering.
type stubRenderer struct {
	calls int
}

func (r *stubRenderer) Render(displayName, subjectName, issuedDate string) ([]byte, error) {
	r.calls++
	return []byte("png-bytes"), nil
}

type completionFixture struct {
	db         *gorm.DB
	completion *CompletionService
	profiles   *repository.ProfileRepository
	progress   *repository.ProgressRepository
	certs      *repository.CertificateRepository
	renderer   *stubRenderer

	user    model.User
	subject model.Subject
}

// newCompletionFixture seeds one user and one subject with two goals:
// a direct-mark goal worth 10 points and a quiz goal worth 15, the quiz
// having two questions.
func newCompletionFixture(t *testing.T) *completionFixture {
	t.Helper()
	db := newTestDB(t)

	cfg := &config.Config{}
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	certRepo := repository.NewCertificateRepository(db)

	storage := NewStorageService(cfg)
	scoring := NewScoringService(profileRepo)
	renderer := &stubRenderer{}
	certService := NewCertificateService(certRepo, goalRepo, progressRepo, userRepo, subjectRepo, renderer, storage)
	completion := NewCompletionService(goalRepo, progressRepo, scoring, certService)

	user := model.User{Name: "Ada", Email: "ada@example.com", Password: "x", Role: model.Student}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	subject := model.Subject{
		Name:        "HTML Basics",
		Description: "Structure of the web",
		Goals: []model.Goal{
			{Description: "Read the semantic HTML guide", Points: 10},
			{
				Description: "Pass the HTML quiz",
				Points:      15,
				Questions: []model.Question{
					{QuestionText: "What does the <a> tag do?", Option1: "Links", Option2: "Styles", Option3: "Scripts", Option4: "Tables", CorrectOption: 1},
					{QuestionText: "Which tag holds metadata?", Option1: "<body>", Option2: "<head>", Option3: "<div>", Option4: "<p>", CorrectOption: 2},
				},
			},
		},
	}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}

	return &completionFixture{
		db:         db,
		completion: completion,
		profiles:   profileRepo,
		progress:   progressRepo,
		certs:      certRepo,
		renderer:   renderer,
		user:       user,
		subject:    subject,
	}
}

func (f *completionFixture) totalScore(t *testing.T) int {
	t.Helper()
	profile, _, err := f.profiles.GetOrCreateByUserID(f.user.ID)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	return profile.TotalScore
}

func (f *completionFixture) quizAnswers() map[uint]int {
	answers := make(map[uint]int)
	for _, q := range f.subject.Goals[1].Questions {
		answers[q.ID] = q.CorrectOption
	}
	return answers
}

func TestMarkCompleteAwardsPointsExactlyOnce(t *testing.T) {
	f := newCompletionFixture(t)
	goal := f.subject.Goals[0]

	result, err := f.completion.MarkComplete(f.user.ID, goal.ID)
	if err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}
	if result.Status != StatusAccepted {
		t.Fatalf("expected accepted, got %s", result.Status)
	}
	if result.PointsAwarded != 10 {
		t.Errorf("expected 10 points awarded, got %d", result.PointsAwarded)
	}
	if got := f.totalScore(t); got != 10 {
		t.Errorf("expected total score 10, got %d", got)
	}

	// Resubmitting the same goal is benign and awards nothing.
	again, err := f.completion.MarkComplete(f.user.ID, goal.ID)
	if err != nil {
		t.Fatalf("second MarkComplete: %v", err)
	}
	if !again.AlreadyCompleted {
		t.Error("second submission should report AlreadyCompleted")
	}
	if again.PointsAwarded != 0 {
		t.Errorf("duplicate submission awarded %d points", again.PointsAwarded)
	}
	if got := f.totalScore(t); got != 10 {
		t.Errorf("total score changed on duplicate submission: %d", got)
	}
}

func TestFailedQuizRecordsNothing(t *testing.T) {
	f := newCompletionFixture(t)
	goal := f.subject.Goals[1]
	answers := f.quizAnswers()
	for id := range answers {
		answers[id] = 4 // all wrong
		break
	}

	result, err := f.completion.SubmitQuiz(f.user.ID, goal.ID, answers)
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if result.Status != StatusRejected {
		t.Fatalf("expected rejected, got %s", result.Status)
	}
	if result.Score != 1 || result.Total != 2 {
		t.Errorf("expected 1/2, got %d/%d", result.Score, result.Total)
	}

	if got := f.totalScore(t); got != 0 {
		t.Errorf("rejected submission changed score: %d", got)
	}
	done, err := f.progress.HasCompleted(f.user.ID, goal.ID)
	if err != nil {
		t.Fatalf("HasCompleted: %v", err)
	}
	if done {
		t.Error("rejected submission must not be recorded as completed")
	}
}

func TestMissingGoalIsNotFound(t *testing.T) {
	f := newCompletionFixture(t)

	_, err := f.completion.MarkComplete(f.user.ID, 99999)
	if err == nil {
		t.Fatal("expected an error for a missing goal")
	}
}

func TestCompletingAllGoalsIssuesCertificate(t *testing.T) {
	f := newCompletionFixture(t)

	first, err := f.completion.MarkComplete(f.user.ID, f.subject.Goals[0].ID)
	if err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}
	if first.Status != StatusAccepted {
		t.Fatalf("first goal: expected accepted, got %s", first.Status)
	}
	if first.Certificate != nil {
		t.Error("certificate issued before the subject was complete")
	}

	second, err := f.completion.SubmitQuiz(f.user.ID, f.subject.Goals[1].ID, f.quizAnswers())
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if second.Status != StatusAcceptedCertificate {
		t.Fatalf("final goal: expected accepted_certificate, got %s", second.Status)
	}
	if second.Certificate == nil {
		t.Fatal("final goal completion should carry the certificate")
	}
	if second.Certificate.SubjectID != f.subject.ID {
		t.Errorf("certificate bound to subject %d, want %d", second.Certificate.SubjectID, f.subject.ID)
	}
	if f.renderer.calls != 1 {
		t.Errorf("renderer invoked %d times, want 1", f.renderer.calls)
	}

	if got := f.totalScore(t); got != 25 {
		t.Errorf("expected total score 25, got %d", got)
	}

	certs, err := f.certs.FindByUserID(f.user.ID)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if len(certs) != 1 {
		t.Fatalf("expected exactly one certificate, got %d", len(certs))
	}
}

func TestNoSecondCertificateForSameSubject(t *testing.T) {
	f := newCompletionFixture(t)

	if _, err := f.completion.MarkComplete(f.user.ID, f.subject.Goals[0].ID); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}
	if _, err := f.completion.SubmitQuiz(f.user.ID, f.subject.Goals[1].ID, f.quizAnswers()); err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}

	// Resubmitting after certification neither awards points nor
	// renders another certificate.
	again, err := f.completion.SubmitQuiz(f.user.ID, f.subject.Goals[1].ID, f.quizAnswers())
	if err != nil {
		t.Fatalf("resubmit quiz: %v", err)
	}
	if again.Status != StatusAccepted || !again.AlreadyCompleted {
		t.Errorf("expected benign accepted duplicate, got status=%s already=%v", again.Status, again.AlreadyCompleted)
	}
	if f.renderer.calls != 1 {
		t.Errorf("renderer invoked %d times, want 1", f.renderer.calls)
	}

	certs, err := f.certs.FindByUserID(f.user.ID)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if len(certs) != 1 {
		t.Fatalf("expected exactly one certificate, got %d", len(certs))
	}
}

func TestPracticalSubmissionPipeline(t *testing.T) {
	f := newCompletionFixture(t)

	subject := model.Subject{
		Name: "CSS Layout",
		Goals: []model.Goal{
			{
				Description: "Center a div with flexbox",
				Points:      20,
				Challenge: &model.PracticalChallenge{
					Instruction:    "Make the container a flex parent",
					ValidationText: "display: flex",
				},
			},
			{Description: "Read the layout guide", Points: 10},
		},
	}
	if err := f.db.Create(&subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	goal := subject.Goals[0]

	// A non-matching submission is rejected and mutates nothing.
	rejected, err := f.completion.SubmitPractical(f.user.ID, goal.ID, "div { color: red; }")
	if err != nil {
		t.Fatalf("SubmitPractical: %v", err)
	}
	if rejected.Status != StatusRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}
	if got := f.totalScore(t); got != 0 {
		t.Errorf("rejected submission changed score: %d", got)
	}
	done, err := f.progress.HasCompleted(f.user.ID, goal.ID)
	if err != nil {
		t.Fatalf("HasCompleted: %v", err)
	}
	if done {
		t.Error("rejected submission must not be recorded as completed")
	}

	// Matching code completes the goal and awards its points.
	accepted, err := f.completion.SubmitPractical(f.user.ID, goal.ID, "DIV { DISPLAY: FLEX; }")
	if err != nil {
		t.Fatalf("SubmitPractical: %v", err)
	}
	if accepted.Status != StatusAccepted {
		t.Fatalf("expected accepted, got %s", accepted.Status)
	}
	if accepted.PointsAwarded != 20 {
		t.Errorf("expected 20 points awarded, got %d", accepted.PointsAwarded)
	}
	if got := f.totalScore(t); got != 20 {
		t.Errorf("expected total score 20, got %d", got)
	}
	done, err = f.progress.HasCompleted(f.user.ID, goal.ID)
	if err != nil {
		t.Fatalf("HasCompleted: %v", err)
	}
	if !done {
		t.Error("accepted submission should be recorded as completed")
	}
}

func TestCertificateAfterGoalRemoved(t *testing.T) {
	f := newCompletionFixture(t)

	// Complete the first goal, then an admin removes it from the
	// subject. Finishing the remaining goal must still certify.
	if _, err := f.completion.MarkComplete(f.user.ID, f.subject.Goals[0].ID); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}
	if err := f.db.Delete(&model.Goal{}, f.subject.Goals[0].ID).Error; err != nil {
		t.Fatalf("delete goal: %v", err)
	}

	result, err := f.completion.SubmitQuiz(f.user.ID, f.subject.Goals[1].ID, f.quizAnswers())
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if result.Status != StatusAcceptedCertificate {
		t.Fatalf("expected accepted_certificate after goal removal, got %s", result.Status)
	}
	if result.Certificate == nil {
		t.Fatal("certificate missing after completing every remaining goal")
	}
}

func TestEmptySubjectNeverCertifies(t *testing.T) {
	f := newCompletionFixture(t)

	empty := model.Subject{Name: "Empty Subject"}
	if err := f.db.Create(&empty).Error; err != nil {
		t.Fatalf("seed empty subject: %v", err)
	}

	cert, err := f.completion.Certificates.CheckSubjectCompletion(f.user.ID, empty.ID)
	if err != nil {
		t.Fatalf("CheckSubjectCompletion: %v", err)
	}
	if cert != nil {
		t.Error("a subject with zero goals must not certify")
	}
}
