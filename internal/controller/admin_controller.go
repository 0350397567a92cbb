package controller

import (
	"errors"
	"strconv"
	"studybuddy_backend/internal/model"
	"studybuddy_backend/internal/service"
	"studybuddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController manages the subject catalog. All routes require the
// admin role.
type AdminController struct {
	ContentService *service.ContentService
}

func NewAdminController(contentService *service.ContentService) *AdminController {
	return &AdminController{ContentService: contentService}
}

type SubjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type MaterialRequest struct {
	SubjectID   uint   `json:"subjectId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	ContentType string `json:"contentType" binding:"required,oneof=video pdf article"`
	Link        string `json:"link" binding:"required,url"`
}

type GoalRequest struct {
	SubjectID   uint   `json:"subjectId" binding:"required"`
	Description string `json:"description" binding:"required"`
	Points      int    `json:"points"`
}

type QuestionRequest struct {
	GoalID        uint   `json:"goalId" binding:"required"`
	QuestionText  string `json:"questionText" binding:"required"`
	Option1       string `json:"option1" binding:"required"`
	Option2       string `json:"option2" binding:"required"`
	Option3       string `json:"option3" binding:"required"`
	Option4       string `json:"option4" binding:"required"`
	CorrectOption int    `json:"correctOption" binding:"required,min=1,max=4"`
}

type ChallengeRequest struct {
	GoalID         uint   `json:"goalId" binding:"required"`
	Instruction    string `json:"instruction" binding:"required"`
	StarterCode    string `json:"starterCode"`
	Hint           string `json:"hint"`
	ValidationText string `json:"validationText" binding:"required"`
}

func (c *AdminController) pathID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}

func (c *AdminController) handleCreateErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSubjectNotFound), errors.Is(err, util.ErrGoalNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary Create a subject
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubjectRequest true "subject fields"
// @Success 201 {object} util.Response
// @Router /admin/subjects [post]
func (c *AdminController) CreateSubject(ctx *gin.Context) {
	var req SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject := &model.Subject{Name: req.Name, Description: req.Description}
	if err := c.ContentService.CreateSubject(subject); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, subject)
}

// @Summary Update a subject
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "subject ID"
// @Param body body SubjectRequest true "subject fields"
// @Success 200 {object} util.Response
// @Router /admin/subjects/{id} [put]
func (c *AdminController) UpdateSubject(ctx *gin.Context) {
	id, ok := c.pathID(ctx)
	if !ok {
		return
	}
	var req SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject := &model.Subject{Name: req.Name, Description: req.Description}
	subject.ID = id
	if err := c.ContentService.UpdateSubject(subject); err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subject)
}

// @Summary Delete a subject
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "subject ID"
// @Success 200 {object} util.Response
// @Router /admin/subjects/{id} [delete]
func (c *AdminController) DeleteSubject(ctx *gin.Context) {
	id, ok := c.pathID(ctx)
	if !ok {
		return
	}
	if err := c.ContentService.DeleteSubject(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Add a learning material to a subject
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body MaterialRequest true "material fields"
// @Success 201 {object} util.Response
// @Router /admin/materials [post]
func (c *AdminController) CreateMaterial(ctx *gin.Context) {
	var req MaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	material := &model.Material{
		SubjectID:   req.SubjectID,
		Title:       req.Title,
		ContentType: model.ContentType(req.ContentType),
		Link:        req.Link,
	}
	if err := c.ContentService.CreateMaterial(material); err != nil {
		c.handleCreateErr(ctx, err)
		return
	}
	util.Created(ctx, material)
}

// @Summary Delete a material
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "material ID"
// @Success 200 {object} util.Response
// @Router /admin/materials/{id} [delete]
func (c *AdminController) DeleteMaterial(ctx *gin.Context) {
	id, ok := c.pathID(ctx)
	if !ok {
		return
	}
	if err := c.ContentService.DeleteMaterial(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Add a goal to a subject
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body GoalRequest true "goal fields"
// @Success 201 {object} util.Response
// @Router /admin/goals [post]
func (c *AdminController) CreateGoal(ctx *gin.Context) {
	var req GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal := &model.Goal{
		SubjectID:   req.SubjectID,
		Description: req.Description,
	}
	if req.Points > 0 {
		goal.Points = req.Points
	}
	if err := c.ContentService.CreateGoal(goal); err != nil {
		c.handleCreateErr(ctx, err)
		return
	}
	util.Created(ctx, goal)
}

// @Summary Delete a goal
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "goal ID"
// @Success 200 {object} util.Response
// @Router /admin/goals/{id} [delete]
func (c *AdminController) DeleteGoal(ctx *gin.Context) {
	id, ok := c.pathID(ctx)
	if !ok {
		return
	}
	if err := c.ContentService.DeleteGoal(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Add a quiz question to a goal
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body QuestionRequest true "question fields"
// @Success 201 {object} util.Response
// @Router /admin/questions [post]
func (c *AdminController) CreateQuestion(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question := &model.Question{
		GoalID:        req.GoalID,
		QuestionText:  req.QuestionText,
		Option1:       req.Option1,
		Option2:       req.Option2,
		Option3:       req.Option3,
		Option4:       req.Option4,
		CorrectOption: req.CorrectOption,
	}
	if err := c.ContentService.CreateQuestion(question); err != nil {
		c.handleCreateErr(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// @Summary Attach a practical challenge to a goal
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ChallengeRequest true "challenge fields"
// @Success 201 {object} util.Response
// @Router /admin/challenges [post]
func (c *AdminController) CreateChallenge(ctx *gin.Context) {
	var req ChallengeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	challenge := &model.PracticalChallenge{
		GoalID:         req.GoalID,
		Instruction:    req.Instruction,
		StarterCode:    req.StarterCode,
		Hint:           req.Hint,
		ValidationText: req.ValidationText,
	}
	if err := c.ContentService.CreateChallenge(challenge); err != nil {
		c.handleCreateErr(ctx, err)
		return
	}
	util.Created(ctx, challenge)
}
