package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonialUC domain.TestimonialUsecase
}

// NewTestimonialHandler registers the testimonial routes (public; the write
// side is rate limited)
func NewTestimonialHandler(public *gin.RouterGroup, limiter gin.HandlerFunc, testimonialUC domain.TestimonialUsecase) {
	handler := &TestimonialHandler{
		testimonialUC: testimonialUC,
	}

	public.GET("/testimonials", handler.ListTestimonials)
	public.POST("/testimonials", limiter, handler.SubmitTestimonial)
}

// ListTestimonials godoc
// @Summary      List testimonials
// @Tags         testimonials
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /testimonials [get]
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "", testimonials)
}

// SubmitTestimonial godoc
// @Summary      Submit a testimonial
// @Description  Validates and stores the testimonial, returning the persisted record so the client can prepend it without a re-fetch.
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        testimonial  body      domain.TestimonialSubmission  true  "Testimonial Data"
// @Success      201          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Router       /testimonials [post]
func (h *TestimonialHandler) SubmitTestimonial(c *gin.Context) {
	var form domain.TestimonialSubmission
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	t, err := h.testimonialUC.Submit(c.Request.Context(), &form)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, usecase.MsgTestimonialSent, t)
}
