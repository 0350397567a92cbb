package controller

import (
	"errors"
	"strconv"
	"studybuddy_backend/internal/service"
	"studybuddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubjectController struct {
	ContentService *service.ContentService
}

func NewSubjectController(contentService *service.ContentService) *SubjectController {
	return &SubjectController{ContentService: contentService}
}

// @Summary List subjects
// @Tags subjects
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /subjects [get]
func (c *SubjectController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.ContentService.ListSubjects()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subjects)
}

// @Summary Subject page: materials, goals and the user's completed goals
// @Tags subjects
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "subject ID"
// @Success 200 {object} util.Response
// @Router /subjects/{id} [get]
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	subjectID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid subject ID")
		return
	}

	detail, err := c.ContentService.GetSubjectDetail(user.UserID, uint(subjectID))
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

// @Summary Practical challenge for a goal
// @Tags subjects
// @Produce json
// @Security ApiKeyAuth
// @Param goalId path int true "goal ID"
// @Success 200 {object} util.Response
// @Router /goals/{goalId}/challenge [get]
func (c *SubjectController) GetChallenge(ctx *gin.Context) {
	goalID, err := strconv.Atoi(ctx.Param("goalId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid goal ID")
		return
	}

	challenge, err := c.ContentService.GetChallengeByGoal(uint(goalID))
	if err != nil {
		if errors.Is(err, util.ErrChallengeNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, challenge)
}
