package controllers

import (
	"net/http"
	"time"

	"github.com/jayspar44/sammy-sub000/services"

	"github.com/gin-gonic/gin"
)

type upsertLogReq struct {
	Date  string `json:"date" binding:"required"`
	Count int    `json:"count"`
	Goal  *int   `json:"goal"` // optional manual goal for the day
}

// POST /api/logs
func UpsertLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req upsertLogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.UpsertDrinkLog(userID, req.Date, req.Count, req.Goal)
	if err != nil {
		c.JSON(statusForErr(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, log)
}

// GET /api/logs?from&to  (defaults to the last 30 days)
func ListLogs(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now := time.Now()
	from := c.DefaultQuery("from", now.AddDate(0, 0, -29).Format("2006-01-02"))
	to := c.DefaultQuery("to", now.Format("2006-01-02"))

	logs, err := services.ListLogs(userID, from, to)
	if err != nil {
		c.JSON(statusForErr(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs, "from": from, "to": to})
}

// GET /api/alerts
func ListAlerts(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	alerts, err := services.ListAlerts(userID, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
