package controller

import (
	"errors"
	"strconv"
	"studybuddy_backend/internal/service"
	"studybuddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CompletionController struct {
	CompletionService *service.CompletionService
}

func NewCompletionController(completionService *service.CompletionService) *CompletionController {
	return &CompletionController{CompletionService: completionService}
}

type QuizSubmission struct {
	Answers map[uint]int `json:"answers" binding:"required"`
}

type PracticalSubmission struct {
	Code string `json:"code" binding:"required"`
}

func (c *CompletionController) goalID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param("goalId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid goal ID")
		return 0, false
	}
	return uint(id), true
}

func (c *CompletionController) respond(ctx *gin.Context, result *service.CompletionResult, err error) {
	if err != nil {
		switch {
		case errors.Is(err, util.ErrGoalNotFound), errors.Is(err, util.ErrChallengeNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// @Summary Mark a goal complete
// @Description Completes a goal that has no quiz or practical challenge attached.
// @Tags completion
// @Produce json
// @Security ApiKeyAuth
// @Param goalId path int true "goal ID"
// @Success 200 {object} util.Response
// @Router /goals/{goalId}/complete [post]
func (c *CompletionController) MarkComplete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	goalID, ok := c.goalID(ctx)
	if !ok {
		return
	}

	result, err := c.CompletionService.MarkComplete(user.UserID, goalID)
	c.respond(ctx, result, err)
}

// @Summary Submit quiz answers for a goal
// @Description Grades the answers; every question must be answered correctly.
// @Tags completion
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param goalId path int true "goal ID"
// @Param body body QuizSubmission true "answers keyed by question ID"
// @Success 200 {object} util.Response
// @Router /goals/{goalId}/quiz [post]
func (c *CompletionController) SubmitQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	goalID, ok := c.goalID(ctx)
	if !ok {
		return
	}

	var req QuizSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.CompletionService.SubmitQuiz(user.UserID, goalID, req.Answers)
	c.respond(ctx, result, err)
}

// @Summary Submit code for a goal's practical challenge
// @Tags completion
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param goalId path int true "goal ID"
// @Param body body PracticalSubmission true "submitted code"
// @Success 200 {object} util.Response
// @Router /goals/{goalId}/practical [post]
func (c *CompletionController) SubmitPractical(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	goalID, ok := c.goalID(ctx)
	if !ok {
		return
	}

	var req PracticalSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.CompletionService.SubmitPractical(user.UserID, goalID, req.Code)
	c.respond(ctx, result, err)
}
