package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"familytravel/internal/models/request_models"
	"familytravel/internal/services"
	"familytravel/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{planService: planService}
}

// IndexHandler serves the planner form page.
func (pc *PlanController) IndexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// CreatePlanHandler handles POST /api/plans.
func (pc *PlanController) CreatePlanHandler(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := pc.planService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan created successfully")
}

// HealthHandler reports process liveness.
func (pc *PlanController) HealthHandler(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"status": "healthy"}, "ok")
}
