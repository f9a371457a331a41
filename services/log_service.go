package services

import (
	"fmt"
	"time"

	"github.com/jayspar44/sammy-sub000/config"
	"github.com/jayspar44/sammy-sub000/models"

	"gorm.io/gorm"
)

// logsByDate loads a user's logs for an inclusive YYYY-MM-DD range, keyed by
// date. String comparison is safe here because the keys sort in calendar
// order.
func logsByDate(db *gorm.DB, userID uint, from, to string) (map[string]models.DailyLog, error) {
	var rows []models.DailyLog
	if err := db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]models.DailyLog, len(rows))
	for _, r := range rows {
		out[r.Date] = r
	}
	return out, nil
}

// UpsertDrinkLog records the actual count for one day, optionally setting a
// manual goal at the same time. Logging a day closes it: a count of zero is
// a dry day, not a gap.
func UpsertDrinkLog(userID uint, date string, count int, goal *int) (*models.DailyLog, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: count must be >= 0", ErrValidation)
	}
	if goal != nil && *goal < 0 {
		return nil, fmt.Errorf("%w: goal must be >= 0", ErrValidation)
	}

	var log models.DailyLog
	if err := config.DB.
		Where("user_id = ? AND date = ?", userID, dateKey(day)).
		FirstOrInit(&log, models.DailyLog{UserID: userID, Date: dateKey(day)}).Error; err != nil {
		return nil, err
	}

	log.Count = &count
	if goal != nil {
		log.Goal = *goal
		log.GoalSource = models.GoalSourceManual
		now := time.Now()
		log.GoalSetAt = &now
	}
	if err := config.DB.Save(&log).Error; err != nil {
		return nil, err
	}

	notifyLogWritten(&log)
	return &log, nil
}

// notifyLogWritten fires user-facing alerts that follow from a log write:
// going over the day's goal, or landing exactly on a dry-streak milestone.
func notifyLogWritten(log *models.DailyLog) {
	if log.GoalSource != "" && *log.Count > log.Goal {
		EmitAlert(log.UserID, "over_goal",
			fmt.Sprintf("You logged %d drinks against a goal of %d on %s.", *log.Count, log.Goal, log.Date))
		return
	}
	if *log.Count != 0 {
		return
	}

	day, err := parseDate(log.Date)
	if err != nil {
		return
	}
	lookback := dryMilestones[len(dryMilestones)-1].TargetDays
	logs, err := logsByDate(config.DB, log.UserID, dateKey(day.AddDate(0, 0, -(lookback-1))), log.Date)
	if err != nil {
		return
	}
	streak := buildRangeSummary(day.AddDate(0, 0, -(lookback-1)), day, logs).DryStreak
	for _, m := range dryMilestones {
		if streak == m.TargetDays {
			EmitAlert(log.UserID, "milestone", fmt.Sprintf("%s — nice work!", m.Label))
		}
	}
}

func ListLogs(userID uint, from, to string) ([]models.DailyLog, error) {
	if _, err := parseDate(from); err != nil {
		return nil, err
	}
	if _, err := parseDate(to); err != nil {
		return nil, err
	}
	var rows []models.DailyLog
	err := config.DB.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func ListAlerts(userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var alerts []models.Alert
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
