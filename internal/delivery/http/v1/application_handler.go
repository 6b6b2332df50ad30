package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes. Both require
// authentication.
func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	protected.POST("/applications/", handler.Submit)
	protected.GET("/applications/", handler.GetMyApplications)
}

type SubmitApplicationRequest struct {
	Job            int64  `json:"job" binding:"required"`
	ApplicantName  string `json:"applicant_name" binding:"required"`
	ApplicantEmail string `json:"applicant_email" binding:"required,email"`
	Resume         string `json:"resume"`
}

// Submit godoc
// @Summary      Submit an application
// @Description  Apply to a job. Name and email are stored as snapshots; the resume is free text or a URL.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitApplicationRequest  true  "Application data"
// @Success      201   {object}  domain.Application
// @Failure      400   {object}  response.ErrorBody
// @Failure      401   {object}  response.ErrorBody
// @Failure      404   {object}  response.ErrorBody
// @Router       /applications/ [post]
// @Security     TokenAuth
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatMessage(err)))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))

	app := &domain.Application{
		JobID:          req.Job,
		ApplicantName:  req.ApplicantName,
		ApplicantEmail: req.ApplicantEmail,
		Resume:         req.Resume,
	}

	if err := h.applicationUC.SubmitApplication(c.Request.Context(), userID, app); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, app)
}

// GetMyApplications godoc
// @Summary      List my applications
// @Description  Applications submitted by the authenticated caller
// @Tags         applications
// @Produce      json
// @Success      200  {array}   domain.Application
// @Failure      401  {object}  response.ErrorBody
// @Router       /applications/ [get]
// @Security     TokenAuth
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	apps, err := h.applicationUC.GetMyApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}

	response.JSON(c, http.StatusOK, apps)
}
