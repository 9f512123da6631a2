package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AboutHandler struct {
	aboutUC domain.AboutUsecase
}

// NewAboutHandler registers the about-page read routes (public)
func NewAboutHandler(public *gin.RouterGroup, aboutUC domain.AboutUsecase) {
	handler := &AboutHandler{
		aboutUC: aboutUC,
	}

	public.GET("/skills", handler.ListSkills)
	public.GET("/timeline", handler.ListTimeline)
}

// ListSkills godoc
// @Summary      List skills
// @Tags         about
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /skills [get]
func (h *AboutHandler) ListSkills(c *gin.Context) {
	skills, err := h.aboutUC.Skills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "", skills)
}

// ListTimeline godoc
// @Summary      List timeline events
// @Tags         about
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /timeline [get]
func (h *AboutHandler) ListTimeline(c *gin.Context) {
	events, err := h.aboutUC.Timeline(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "", events)
}
