package v1

import (
	"net/http"

	"go-interview-scheduler/internal/delivery/http/response"
	"go-interview-scheduler/internal/domain"
	"go-interview-scheduler/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

func NewInterviewHandler(rg *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := rg.Group("/interviews")
	{
		interviews.GET("", handler.ListBySpecialist)
		interviews.POST("", handler.Create)
		interviews.PUT("/:id/transfer", handler.Transfer)
		interviews.DELETE("/:id", handler.Delete)
	}
}

type CreateInterviewRequest struct {
	SpecialistID    string   `json:"specialist_id" binding:"required"`
	CandidateName   string   `json:"candidate_name" binding:"required"`
	InterviewTime   string   `json:"interview_time" binding:"required"`
	DurationMinutes int      `json:"duration_minutes"`
	Skills          []string `json:"skills"`
}

type TransferInterviewRequest struct {
	NewSpecialistID string `json:"new_specialist_id" binding:"required"`
}

// CreateInterview godoc
// @Summary      Schedule an interview
// @Description  Book a candidate interview with a specialist. The slot must fall inside the specialist's availability window, not collide with existing bookings, and the specialist must hold at least 80% of the required skills.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interview  body      CreateInterviewRequest  true  "Interview JSON"
// @Success      201        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /interviews [post]
func (h *InterviewHandler) Create(c *gin.Context) {
	var req CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	interview := &domain.Interview{
		SpecialistID:    req.SpecialistID,
		CandidateName:   req.CandidateName,
		InterviewTime:   req.InterviewTime,
		DurationMinutes: req.DurationMinutes,
	}

	created, err := h.interviewUC.ScheduleInterview(c, interview, req.Skills)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview scheduled", created)
}

// TransferInterview godoc
// @Summary      Transfer an interview
// @Description  Move an interview to another specialist. The original time, duration and required skills are re-validated against the target specialist.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id        path      string                    true  "Interview ID"
// @Param        transfer  body      TransferInterviewRequest  true  "Transfer JSON"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /interviews/{id}/transfer [put]
func (h *InterviewHandler) Transfer(c *gin.Context) {
	var req TransferInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.interviewUC.TransferInterview(c, c.Param("id"), req.NewSpecialistID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview transferred successfully", nil)
}

// ListInterviews godoc
// @Summary      List interviews for a specialist
// @Description  Get a specialist's interviews with their required skills
// @Tags         interviews
// @Produce      json
// @Param        specialist_id  query     string  true  "Specialist ID"
// @Success      200            {object}  response.Response
// @Failure      400            {object}  response.Response
// @Router       /interviews [get]
func (h *InterviewHandler) ListBySpecialist(c *gin.Context) {
	specialistID := c.Query("specialist_id")
	if specialistID == "" {
		c.Error(apperror.BadRequest("specialist_id query parameter is required"))
		return
	}

	interviews, err := h.interviewUC.ListBySpecialist(c, specialistID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview list", interviews)
}

// DeleteInterview godoc
// @Summary      Delete an interview
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [delete]
func (h *InterviewHandler) Delete(c *gin.Context) {
	if err := h.interviewUC.DeleteInterview(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview deleted successfully", nil)
}
