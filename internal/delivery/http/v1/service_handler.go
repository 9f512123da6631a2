package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	serviceUC domain.ServiceUsecase
}

// NewServiceHandler registers the service read route (public)
func NewServiceHandler(public *gin.RouterGroup, serviceUC domain.ServiceUsecase) {
	handler := &ServiceHandler{
		serviceUC: serviceUC,
	}

	public.GET("/services", handler.ListServices)
}

// ListServices godoc
// @Summary      List services
// @Description  Returns the service offering, alphabetical, icons resolved.
// @Tags         services
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.serviceUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "", services)
}
