package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GoalSourceWeeklyPlan = "weekly_plan"
	GoalSourceManual     = "manual"
)

// DailyLog is one drinking record per user per calendar date. Dates are
// plain local YYYY-MM-DD strings; no timezone conversion happens anywhere.
//
// A row with Count set is a logged day. A row with a goal but no count is a
// projected day. A past date with no row (or a nil Count) is a no-record
// day, which is not the same thing as a logged zero.
type DailyLog struct {
	gorm.Model
	UserID     uint   `gorm:"uniqueIndex:idx_logs_user_date;not null" json:"user_id"`
	Date       string `gorm:"uniqueIndex:idx_logs_user_date;size:10;not null" json:"date"`
	Goal       int    `json:"goal"`
	GoalSource string `gorm:"size:16" json:"goal_source"` // "weekly_plan" | "manual"
	GoalSetAt  *time.Time `json:"goal_set_at,omitempty"`
	Count      *int       `json:"count"`
}

// Logged reports whether the day has an actual count (including zero).
func (l *DailyLog) Logged() bool { return l.Count != nil }
