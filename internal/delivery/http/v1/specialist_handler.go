package v1

import (
	"net/http"

	"go-interview-scheduler/internal/delivery/http/response"
	"go-interview-scheduler/internal/domain"
	"go-interview-scheduler/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SpecialistHandler struct {
	specialistUC domain.SpecialistUsecase
}

func NewSpecialistHandler(rg *gin.RouterGroup, specialistUC domain.SpecialistUsecase) {
	handler := &SpecialistHandler{specialistUC: specialistUC}

	specialists := rg.Group("/specialists")
	{
		specialists.GET("", handler.List)
		specialists.GET("/:id", handler.GetDetails)
		specialists.POST("", handler.Create)
		specialists.PUT("/:id", handler.Update)
		specialists.DELETE("/:id", handler.Delete)
	}
}

type CreateSpecialistRequest struct {
	FullName      string   `json:"full_name" binding:"required"`
	AvailableFrom string   `json:"available_from" binding:"required"`
	AvailableTo   string   `json:"available_to" binding:"required"`
	Skills        []string `json:"skills"`
}

type UpdateSpecialistRequest struct {
	FullName      string   `json:"full_name" binding:"required"`
	AvailableFrom string   `json:"available_from" binding:"required"`
	AvailableTo   string   `json:"available_to" binding:"required"`
	Skills        []string `json:"skills"`
}

// ListSpecialists godoc
// @Summary      List specialists
// @Description  Get all specialists with their skills and scheduled interviews
// @Tags         specialists
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /specialists [get]
func (h *SpecialistHandler) List(c *gin.Context) {
	specialists, err := h.specialistUC.ListSpecialists(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Specialist list", specialists)
}

// GetSpecialist godoc
// @Summary      Get specialist details
// @Description  Get one specialist with skills and scheduled interviews
// @Tags         specialists
// @Produce      json
// @Param        id   path      string  true  "Specialist ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /specialists/{id} [get]
func (h *SpecialistHandler) GetDetails(c *gin.Context) {
	specialist, err := h.specialistUC.GetSpecialist(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Specialist details", specialist)
}

// CreateSpecialist godoc
// @Summary      Create a specialist
// @Description  Register an interviewer with an availability window and skill set
// @Tags         specialists
// @Accept       json
// @Produce      json
// @Param        specialist  body      CreateSpecialistRequest  true  "Specialist JSON"
// @Success      201         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Router       /specialists [post]
func (h *SpecialistHandler) Create(c *gin.Context) {
	var req CreateSpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	specialist := &domain.Specialist{
		FullName:      req.FullName,
		AvailableFrom: req.AvailableFrom,
		AvailableTo:   req.AvailableTo,
	}

	created, err := h.specialistUC.CreateSpecialist(c, specialist, req.Skills)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Specialist created", created)
}

// UpdateSpecialist godoc
// @Summary      Update a specialist
// @Description  Full replace of name, availability window and skill set. Existing interviews are re-validated against the new window and skills.
// @Tags         specialists
// @Accept       json
// @Produce      json
// @Param        id          path      string                   true  "Specialist ID"
// @Param        specialist  body      UpdateSpecialistRequest  true  "Specialist JSON"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /specialists/{id} [put]
func (h *SpecialistHandler) Update(c *gin.Context) {
	var req UpdateSpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	specialist := &domain.Specialist{
		ID:            c.Param("id"),
		FullName:      req.FullName,
		AvailableFrom: req.AvailableFrom,
		AvailableTo:   req.AvailableTo,
	}

	if err := h.specialistUC.UpdateSpecialist(c, specialist, req.Skills); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Specialist updated successfully", nil)
}

// DeleteSpecialist godoc
// @Summary      Delete a specialist
// @Description  Delete a specialist; their interviews are removed as well
// @Tags         specialists
// @Produce      json
// @Param        id   path      string  true  "Specialist ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /specialists/{id} [delete]
func (h *SpecialistHandler) Delete(c *gin.Context) {
	if err := h.specialistUC.DeleteSpecialist(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Specialist deleted successfully", nil)
}
