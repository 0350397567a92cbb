package controller

import (
	"errors"
	"studybuddy_backend/internal/model"
	"studybuddy_backend/internal/service"
	"studybuddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertificateService *service.CertificateService
}

func NewCertificateController(certificateService *service.CertificateService) *CertificateController {
	return &CertificateController{CertificateService: certificateService}
}

type certificateView struct {
	ID        string `json:"id"`
	SubjectID uint   `json:"subjectId"`
	IssuedAt  string `json:"issuedAt"`
	ImageURL  string `json:"imageUrl"`
}

func (c *CertificateController) view(cert *model.Certificate) certificateView {
	return certificateView{
		ID:        cert.ID,
		SubjectID: cert.SubjectID,
		IssuedAt:  cert.IssuedAt.Format("2006-01-02"),
		ImageURL:  c.CertificateService.ImageURL(cert),
	}
}

// @Summary List the user's certificates
// @Tags certificates
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /certificates [get]
func (c *CertificateController) ListMine(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	certs, err := c.CertificateService.ListByUser(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	views := make([]certificateView, len(certs))
	for i := range certs {
		views[i] = c.view(&certs[i])
	}
	util.Success(ctx, views)
}

// @Summary Fetch a certificate by its ID
// @Description Certificates are shareable: any holder of the ID may view one.
// @Tags certificates
// @Produce json
// @Param id path string true "certificate UUID"
// @Success 200 {object} util.Response
// @Router /certificates/{id} [get]
func (c *CertificateController) GetByID(ctx *gin.Context) {
	cert, err := c.CertificateService.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrCertificateNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, c.view(cert))
}
