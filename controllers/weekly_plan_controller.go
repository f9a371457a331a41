package controllers

import (
	"net/http"

	"github.com/jayspar44/sammy-sub000/services"

	"github.com/gin-gonic/gin"
)

type WeeklyPlanController struct {
	Plan    *services.PlanService
	Stats   *services.StatsService
	Savings *services.SavingsService
}

func NewWeeklyPlanController(plan *services.PlanService, stats *services.StatsService, savings *services.SavingsService) *WeeklyPlanController {
	return &WeeklyPlanController{Plan: plan, Stats: stats, Savings: savings}
}

type setWeeklyPlanReq struct {
	Targets             services.WeeklyTargets `json:"targets"`
	WeekStartDate       string                 `json:"weekStartDate"`
	IsRecurring         bool                   `json:"isRecurring"`
	OverwriteLoggedDays bool                   `json:"overwriteLoggedDays"`
}

// POST /api/user/weekly-plan
func (h *WeeklyPlanController) SetWeeklyPlan(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req setWeeklyPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	today, err := resolveToday(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	weekTotal, daysProjected, err := h.Plan.Apply(userID, services.ApplyPlanInput{
		Targets:             req.Targets,
		WeekStartDate:       req.WeekStartDate,
		IsRecurring:         req.IsRecurring,
		OverwriteLoggedDays: req.OverwriteLoggedDays,
	}, today)
	if err != nil {
		c.JSON(statusForErr(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"weekTotal":     weekTotal,
		"daysProjected": daysProjected,
	})
}

// GET /api/user/weekly-plan
// Reading the plan also applies an active recurring template to a week it
// has not reached yet, so the view is always current.
func (h *WeeklyPlanController) GetWeeklyPlan(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	today, err := resolveToday(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tpl, _, err := h.Plan.EnsureCurrentWeek(userID, today)
	if err != nil {
		c.JSON(statusForErr(err), gin.H{"error": err.Error()})
		return
	}

	view, err := h.Stats.WeekView(userID, today, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"template":    tpl,
		"currentWeek": view,
	})
}

type typicalWeekReq struct {
	services.WeeklyTargets
}

// PUT /api/user/typical-week
func (h *WeeklyPlanController) SetTypicalWeek(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req typicalWeekReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tw, err := h.Savings.UpsertBaseline(userID, req.WeeklyTargets)
	if err != nil {
		c.JSON(statusForErr(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"typicalWeek": tw, "weekTotal": tw.WeekTotal()})
}

// GET /api/user/typical-week
func (h *WeeklyPlanController) GetTypicalWeek(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	tw, err := h.Savings.Baseline(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"typicalWeek": tw, "hasTypicalWeek": tw != nil})
}
