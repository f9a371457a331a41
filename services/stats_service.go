package services

import (
	"fmt"
	"time"

	"github.com/jayspar44/sammy-sub000/models"

	"gorm.io/gorm"
)

type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

// Day statuses as shown in the app's week strip.
const (
	StatusUnder    = "under"
	StatusOver     = "over"
	StatusToday    = "today"
	StatusFuture   = "future"
	StatusNoRecord = "no_record"
)

type DayEntry struct {
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	Goal       int    `json:"goal"`
	GoalSource string `json:"goal_source,omitempty"`
	Count      *int   `json:"count"`
	Status     string `json:"status"`
}

type WeekView struct {
	WeekStart  string     `json:"week_start"`
	Days       []DayEntry `json:"days"`
	TotalGoal  int        `json:"total_goal"`
	TotalCount int        `json:"total_count"`
	DaysLogged int        `json:"days_logged"`
}

type RangeSummary struct {
	From        string `json:"from"`
	To          string `json:"to"`
	TotalDrinks int    `json:"total_drinks"`
	TotalTarget int    `json:"total_target"`
	DryDays     int    `json:"dry_days"`
	DaysLogged  int    `json:"days_logged"`
	DryStreak   int    `json:"dry_streak"`
}

// dayStatus classifies one calendar day. Logged days are judged against
// their goal regardless of position in the week; unlogged days split into
// today, future and no-record (a gap in the past).
func dayStatus(log models.DailyLog, hasLog bool, date, today string) string {
	switch {
	case hasLog && log.Logged():
		if *log.Count <= log.Goal {
			return StatusUnder
		}
		return StatusOver
	case date == today:
		return StatusToday
	case date > today:
		return StatusFuture
	default:
		return StatusNoRecord
	}
}

// buildWeekView produces exactly seven entries, weekStart through Sunday.
// Absent counts contribute 0 to the total but do not count as logged days.
func buildWeekView(weekStart time.Time, logs map[string]models.DailyLog, today time.Time) WeekView {
	weekStart = startOfWeek(weekStart)
	todayKey := dateKey(today)

	view := WeekView{WeekStart: dateKey(weekStart)}
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		key := dateKey(d)
		log, ok := logs[key]

		entry := DayEntry{
			Date:    key,
			Weekday: d.Weekday().String(),
			Status:  dayStatus(log, ok, key, todayKey),
		}
		if ok {
			entry.Goal = log.Goal
			entry.GoalSource = log.GoalSource
			entry.Count = log.Count
		}
		view.Days = append(view.Days, entry)

		view.TotalGoal += entry.Goal
		if entry.Count != nil {
			view.TotalCount += *entry.Count
			view.DaysLogged++
		}
	}
	return view
}

// buildRangeSummary aggregates an inclusive date range. The dry streak scans
// backward from the range end and stops at the first drinking day or the
// first gap: a no-record day breaks the streak, it is never an implicit
// zero. (The cumulative savings series treats gaps the opposite way; both
// are deliberate.)
func buildRangeSummary(from, to time.Time, logs map[string]models.DailyLog) RangeSummary {
	sum := RangeSummary{From: dateKey(from), To: dateKey(to)}

	for d := dayStart(from); !d.After(to); d = d.AddDate(0, 0, 1) {
		log, ok := logs[dateKey(d)]
		if !ok {
			continue
		}
		sum.TotalTarget += log.Goal
		if log.Logged() {
			sum.DaysLogged++
			sum.TotalDrinks += *log.Count
			if *log.Count == 0 {
				sum.DryDays++
			}
		}
	}

	for d := dayStart(to); !d.Before(from); d = d.AddDate(0, 0, -1) {
		log, ok := logs[dateKey(d)]
		if !ok || !log.Logged() || *log.Count > 0 {
			break
		}
		sum.DryStreak++
	}
	return sum
}

// WeekView loads one calendar week of logs and classifies each day.
// A user with no logs gets seven goal-less entries, not an error.
func (s *StatsService) WeekView(userID uint, weekStart, today time.Time) (WeekView, error) {
	weekStart = startOfWeek(weekStart)
	logs, err := logsByDate(s.db, userID, dateKey(weekStart), dateKey(weekStart.AddDate(0, 0, 6)))
	if err != nil {
		return WeekView{}, err
	}
	return buildWeekView(weekStart, logs, today), nil
}

// RangeSummary aggregates the `days` most recent days ending at today.
func (s *StatsService) RangeSummary(userID uint, days int, today time.Time) (RangeSummary, error) {
	if days <= 0 {
		return RangeSummary{}, fmt.Errorf("%w: days must be positive", ErrValidation)
	}
	to := dayStart(today)
	from := to.AddDate(0, 0, -(days - 1))
	logs, err := logsByDate(s.db, userID, dateKey(from), dateKey(to))
	if err != nil {
		return RangeSummary{}, err
	}
	return buildRangeSummary(from, to, logs), nil
}

// ---------- Milestones ----------

type Milestone struct {
	Label      string  `json:"label"`
	TargetDays int     `json:"target_days"`
	Achieved   bool    `json:"achieved"`
	Progress   float64 `json:"progress"` // 0..1 of the current dry streak
}

var dryMilestones = []Milestone{
	{Label: "One dry week", TargetDays: 7},
	{Label: "One dry month", TargetDays: 30},
	{Label: "90 dry days", TargetDays: 90},
}

func buildMilestones(streak int) []Milestone {
	out := make([]Milestone, len(dryMilestones))
	for i, m := range dryMilestones {
		m.Achieved = streak >= m.TargetDays
		p := float64(streak) / float64(m.TargetDays)
		if p > 1 {
			p = 1
		}
		m.Progress = p
		out[i] = m
	}
	return out
}

// Milestones reports progress of the current dry streak against the fixed
// milestone ladder, looking back far enough to cover the longest one.
func (s *StatsService) Milestones(userID uint, today time.Time) ([]Milestone, error) {
	sum, err := s.RangeSummary(userID, dryMilestones[len(dryMilestones)-1].TargetDays, today)
	if err != nil {
		return nil, err
	}
	return buildMilestones(sum.DryStreak), nil
}
