package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/jayspar44/sammy-sub000/services"
	"github.com/jayspar44/sammy-sub000/utils"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Stats   *services.StatsService
	Savings *services.SavingsService
	Summary *services.SummaryService
}

func NewStatsController(stats *services.StatsService, savings *services.SavingsService, summary *services.SummaryService) *StatsController {
	return &StatsController{Stats: stats, Savings: savings, Summary: summary}
}

// GET /api/stats/weekly-summary?includeAI=bool&date=YYYY-MM-DD
func (h *StatsController) GetWeeklySummary(c *gin.Context) {
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

	view, err := h.Stats.WeekView(userID, today, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	dryDays := 0
	for _, d := range view.Days {
		if d.Count != nil && *d.Count == 0 {
			dryDays++
		}
	}

	moneySaved := 0.0
	if user, err := services.FindUserByID(userID); err == nil {
		moneySaved = services.MoneySaved(services.RangeSummary{
			TotalTarget: view.TotalGoal,
			TotalDrinks: view.TotalCount,
		}, user.DrinkPrice)
	}

	risk, _ := utils.WeeklyRisk(view.TotalCount)

	resp := gin.H{
		"days":        view.Days,
		"weekStart":   view.WeekStart,
		"totalDrinks": view.TotalCount,
		"totalTarget": view.TotalGoal,
		"daysLogged":  view.DaysLogged,
		"dryDays":     dryDays,
		"moneySaved":  moneySaved,
		"riskBand":    risk,
	}

	if c.DefaultQuery("includeAI", "false") == "true" {
		if text, err := h.Summary.WeeklySummary(view); err == nil {
			resp["aiSummary"] = text
		} else {
			log.Printf("weekly summary generation failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GET /api/stats/summary?days=7|30&date=YYYY-MM-DD
func (h *StatsController) GetRangeSummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 || days > 365 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 365"})
		return
	}

	today, err := resolveToday(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sum, err := h.Stats.RangeSummary(userID, days, today)
	if err != nil {
		c.JSON(statusForErr(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sum)
}

// GET /api/stats/cumulative?mode=target|benchmark&range=90d|all&date&raw
func (h *StatsController) GetCumulative(c *gin.Context) {
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

	mode := c.DefaultQuery("mode", services.ModeTarget)
	rng := c.DefaultQuery("range", services.RangeNinety)

	out, hasTypicalWeek, err := h.Savings.Series(userID, mode, rng, today)
	if err != nil {
		c.JSON(statusForErr(err), gin.H{"error": err.Error(), "hasTypicalWeek": hasTypicalWeek})
		return
	}

	series := out.Series
	if c.DefaultQuery("raw", "false") != "true" {
		series = services.DownsampleSeries(series, services.MaxChartPoints)
	}

	c.JSON(http.StatusOK, gin.H{
		"series":         series,
		"summary":        out.Summary,
		"mode":           out.Mode,
		"range":          out.Range,
		"hasTypicalWeek": hasTypicalWeek,
	})
}

// GET /api/stats/milestones?date=YYYY-MM-DD
func (h *StatsController) GetMilestones(c *gin.Context) {
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

	milestones, err := h.Stats.Milestones(userID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"milestones": milestones})
}

// --- helpers ---

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}

// resolveToday reads the explicit "today" override the clients use for
// review screens; absent that, the server's local date.
func resolveToday(c *gin.Context) (time.Time, error) {
	v := c.Query("date")
	if v == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		return time.Time{}, errors.New("invalid date, want YYYY-MM-DD")
	}
	return t, nil
}

func statusForErr(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnsupportedMode):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrAtomicWrite):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
