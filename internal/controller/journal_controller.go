package controller

import (
	"errors"
	"strconv"
	"studybuddy_backend/internal/service"
	"studybuddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type JournalController struct {
	JournalService *service.JournalService
}

func NewJournalController(journalService *service.JournalService) *JournalController {
	return &JournalController{JournalService: journalService}
}

func (c *JournalController) entryID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid entry ID")
		return 0, false
	}
	return uint(id), true
}

// @Summary List journal entries
// @Tags journal
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /journal [get]
func (c *JournalController) ListEntries(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	entries, err := c.JournalService.ListEntries(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// @Summary Create a journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.JournalEntryRequest true "entry fields"
// @Success 201 {object} util.Response
// @Router /journal [post]
func (c *JournalController) CreateEntry(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.JournalEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.JournalService.CreateEntry(user.UserID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, entry)
}

// @Summary Update a journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "entry ID"
// @Param body body service.JournalEntryRequest true "entry fields"
// @Success 200 {object} util.Response
// @Router /journal/{id} [put]
func (c *JournalController) UpdateEntry(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	entryID, ok := c.entryID(ctx)
	if !ok {
		return
	}

	var req service.JournalEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.JournalService.UpdateEntry(user.UserID, entryID, req)
	if err != nil {
		if errors.Is(err, util.ErrEntryNotFound) {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, entry)
}

// @Summary Delete a journal entry
// @Tags journal
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "entry ID"
// @Success 200 {object} util.Response
// @Router /journal/{id} [delete]
func (c *JournalController) DeleteEntry(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	entryID, ok := c.entryID(ctx)
	if !ok {
		return
	}

	if err := c.JournalService.DeleteEntry(user.UserID, entryID); err != nil {
		if errors.Is(err, util.ErrEntryNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Attach an image to a journal entry
// @Tags journal
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "entry ID"
// @Param image formData file true "image file"
// @Success 200 {object} util.Response
// @Router /journal/{id}/image [post]
func (c *JournalController) AttachImage(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	entryID, ok := c.entryID(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "Missing image file")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.JournalService.AttachImage(ctx.Request.Context(), user.UserID, entryID, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, util.ErrEntryNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}
