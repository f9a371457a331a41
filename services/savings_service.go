package services

import (
	"fmt"
	"math"
	"time"

	"github.com/jayspar44/sammy-sub000/models"

	"gorm.io/gorm"
)

type SavingsService struct{ db *gorm.DB }

func NewSavingsService(db *gorm.DB) *SavingsService { return &SavingsService{db: db} }

const (
	ModeTarget    = "target"    // compare against each day's goal
	ModeBenchmark = "benchmark" // compare against the typical-week baseline

	RangeNinety = "90d"
	RangeAll    = "all"

	maxWindowDays  = 180
	minWindowDays  = 90
	MaxChartPoints = 90
)

type SeriesPoint struct {
	Date       string `json:"date"`
	Daily      int    `json:"daily"`
	Cumulative int    `json:"cumulative"`
}

type SeriesSummary struct {
	TotalSaved int     `json:"total_saved"`
	AvgPerWeek float64 `json:"avg_per_week"`
	WindowDays int     `json:"window_days"`
}

type CumulativeSeries struct {
	Series  []SeriesPoint `json:"series"`
	Summary SeriesSummary `json:"summary"`
	Mode    string        `json:"mode"`
	Range   string        `json:"range"`
}

// buildCumulativeSeries produces the full chronological series for the
// window ending at today. Each day contributes reference minus actual, where
// a day with no record counts as 0 actual — the user is assumed to have
// stayed at the reference. That keeps the running total continuous and is
// intentionally the opposite of the dry-streak gap rule.
func buildCumulativeSeries(
	mode string,
	windowDays int,
	logs map[string]models.DailyLog,
	baseline *models.TypicalWeek,
	today time.Time,
) ([]SeriesPoint, SeriesSummary, error) {

	if mode != ModeTarget && mode != ModeBenchmark {
		return nil, SeriesSummary{}, fmt.Errorf("%w: mode must be %q or %q", ErrValidation, ModeTarget, ModeBenchmark)
	}
	if mode == ModeBenchmark && baseline == nil {
		return nil, SeriesSummary{}, ErrUnsupportedMode
	}
	if windowDays <= 0 {
		return nil, SeriesSummary{}, fmt.Errorf("%w: window must be positive", ErrValidation)
	}

	start := dayStart(today).AddDate(0, 0, -(windowDays - 1))
	series := make([]SeriesPoint, 0, windowDays)
	cumulative := 0

	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		log := logs[dateKey(d)] // zero value when absent

		ref := log.Goal
		if mode == ModeBenchmark {
			ref = baseline.ValueFor(d.Weekday())
		}
		actual := 0
		if log.Logged() {
			actual = *log.Count
		}

		daily := ref - actual
		cumulative += daily
		series = append(series, SeriesPoint{Date: dateKey(d), Daily: daily, Cumulative: cumulative})
	}

	summary := SeriesSummary{
		TotalSaved: cumulative,
		AvgPerWeek: round1(float64(cumulative) / (float64(windowDays) / 7.0)),
		WindowDays: windowDays,
	}
	return series, summary, nil
}

// DownsampleSeries thins a series to at most max points for charting by
// taking every ceil(n/max)-th point, always keeping the final one. The
// engine itself always returns the full series; callers opt in per request.
func DownsampleSeries(series []SeriesPoint, max int) []SeriesPoint {
	if max <= 0 || len(series) <= max {
		return series
	}
	step := (len(series) + max - 1) / max
	out := make([]SeriesPoint, 0, max)
	for i := 0; i < len(series); i += step {
		out = append(out, series[i])
	}
	if out[len(out)-1].Date != series[len(series)-1].Date {
		out = append(out, series[len(series)-1])
	}
	return out
}

// Series resolves the requested range, loads the window of logs plus the
// baseline, and computes the cumulative series. "90d" is a fixed 90-day
// window; "all" reaches back to the user's earliest log, clamped to
// [90, 180] days.
func (s *SavingsService) Series(userID uint, mode, rng string, today time.Time) (*CumulativeSeries, bool, error) {
	windowDays := minWindowDays
	switch rng {
	case RangeNinety:
	case RangeAll:
		var earliest string
		err := s.db.Model(&models.DailyLog{}).
			Where("user_id = ?", userID).
			Select("COALESCE(MIN(date), '')").
			Scan(&earliest).Error
		if err != nil {
			return nil, false, err
		}
		if earliest != "" {
			if first, err := parseDate(earliest); err == nil {
				days := int(dayStart(today).Sub(dayStart(first)).Hours()/24) + 1
				if days > windowDays {
					windowDays = days
				}
			}
		}
		if windowDays > maxWindowDays {
			windowDays = maxWindowDays
		}
	default:
		return nil, false, fmt.Errorf("%w: range must be %q or %q", ErrValidation, RangeNinety, RangeAll)
	}

	baseline, err := s.Baseline(userID)
	if err != nil {
		return nil, false, err
	}

	start := dayStart(today).AddDate(0, 0, -(windowDays - 1))
	logs, err := logsByDate(s.db, userID, dateKey(start), dateKey(today))
	if err != nil {
		return nil, baseline != nil, err
	}

	series, summary, err := buildCumulativeSeries(mode, windowDays, logs, baseline, today)
	if err != nil {
		return nil, baseline != nil, err
	}
	return &CumulativeSeries{Series: series, Summary: summary, Mode: mode, Range: rng}, baseline != nil, nil
}

func (s *SavingsService) Baseline(userID uint) (*models.TypicalWeek, error) {
	var tw models.TypicalWeek
	err := s.db.Where("user_id = ?", userID).First(&tw).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tw, nil
}

func (s *SavingsService) UpsertBaseline(userID uint, targets WeeklyTargets) (*models.TypicalWeek, error) {
	if err := targets.validate(); err != nil {
		return nil, err
	}
	var tw models.TypicalWeek
	if err := s.db.Where("user_id = ?", userID).
		FirstOrInit(&tw, models.TypicalWeek{UserID: userID}).Error; err != nil {
		return nil, err
	}
	tw.Monday, tw.Tuesday, tw.Wednesday = targets.Monday, targets.Tuesday, targets.Wednesday
	tw.Thursday, tw.Friday = targets.Thursday, targets.Friday
	tw.Saturday, tw.Sunday = targets.Saturday, targets.Sunday
	if err := s.db.Save(&tw).Error; err != nil {
		return nil, err
	}
	return &tw, nil
}

// MoneySaved prices the gap between target and actual for a range. Days over
// target never go negative; money saved floors at zero.
func MoneySaved(sum RangeSummary, pricePerDrink float64) float64 {
	saved := sum.TotalTarget - sum.TotalDrinks
	if saved <= 0 || pricePerDrink <= 0 {
		return 0
	}
	return round2(float64(saved) * pricePerDrink)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
