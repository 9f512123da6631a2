package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, rate limited)
func NewContactHandler(public *gin.RouterGroup, limiter gin.HandlerFunc, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limiter, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit the contact form
// @Description  Validates the submission, stores it and relays a notification email. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var form domain.ContactSubmission
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	msg, err := h.contactUC.Submit(c.Request.Context(), &form)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, usecase.MsgSent, msg)
}
