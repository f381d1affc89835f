package v1

import (
	"net/http"

	"go-interview-scheduler/internal/delivery/http/response"
	"go-interview-scheduler/internal/domain"
	"go-interview-scheduler/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(rg *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	skills := rg.Group("/skills")
	{
		skills.GET("", handler.List)
		skills.POST("", handler.Create)
	}
}

type CreateSkillRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListSkills godoc
// @Summary      List skills
// @Description  Get all skills ordered by name
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill list", skills)
}

// CreateSkill godoc
// @Summary      Create a skill
// @Description  Register a new named competency tag
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        skill  body      CreateSkillRequest  true  "Skill JSON"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /skills [post]
func (h *SkillHandler) Create(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill, err := h.skillUC.CreateSkill(c, req.Name)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Skill created", skill)
}
