package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

// NewProjectHandler registers the project read routes (public)
func NewProjectHandler(public *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{
		projectUC: projectUC,
	}

	public.GET("/projects", handler.ListProjects)
	public.GET("/projects/:id", handler.GetProject)
}

// ListProjects godoc
// @Summary      List projects
// @Description  Returns the project cards, newest first.
// @Tags         projects
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "", projects)
}

// GetProject godoc
// @Summary      Get one project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "", project)
}
