package services

import (
	"fmt"
	"time"

	"github.com/jayspar44/sammy-sub000/models"

	"gorm.io/gorm"
)

type PlanService struct{ db *gorm.DB }

func NewPlanService(db *gorm.DB) *PlanService { return &PlanService{db: db} }

// WeeklyTargets is the seven-day target pattern as it arrives over the API.
type WeeklyTargets struct {
	Monday    int `json:"monday"`
	Tuesday   int `json:"tuesday"`
	Wednesday int `json:"wednesday"`
	Thursday  int `json:"thursday"`
	Friday    int `json:"friday"`
	Saturday  int `json:"saturday"`
	Sunday    int `json:"sunday"`
}

func (w WeeklyTargets) validate() error {
	for _, v := range []int{w.Monday, w.Tuesday, w.Wednesday, w.Thursday, w.Friday, w.Saturday, w.Sunday} {
		if v < 0 {
			return fmt.Errorf("%w: weekly targets must be >= 0", ErrValidation)
		}
	}
	return nil
}

func (w WeeklyTargets) applyTo(t *models.WeeklyPlanTemplate) {
	t.Monday, t.Tuesday, t.Wednesday = w.Monday, w.Tuesday, w.Wednesday
	t.Thursday, t.Friday = w.Thursday, w.Friday
	t.Saturday, t.Sunday = w.Saturday, w.Sunday
}

func (w WeeklyTargets) changed(t *models.WeeklyPlanTemplate) bool {
	return w.Monday != t.Monday || w.Tuesday != t.Tuesday ||
		w.Wednesday != t.Wednesday || w.Thursday != t.Thursday ||
		w.Friday != t.Friday || w.Saturday != t.Saturday || w.Sunday != t.Sunday
}

type ApplyPlanInput struct {
	Targets             WeeklyTargets
	WeekStartDate       string // optional; must be the Monday of today's week when set
	IsRecurring         bool
	OverwriteLoggedDays bool // retarget days that already have a count
}

// buildProjection decides which days of the current week receive a goal from
// the template and returns the log rows to persist. Existing rows keep their
// ID and count; only goal fields change. Days strictly before today are never
// touched, and a week whose Monday equals LastApplied is a no-op.
func buildProjection(
	tpl *models.WeeklyPlanTemplate,
	existing map[string]models.DailyLog,
	today time.Time,
	now time.Time,
	overwriteLogged bool,
) ([]models.DailyLog, int) {

	weekStart := startOfWeek(today)
	if tpl.LastApplied == dateKey(weekStart) {
		return nil, 0
	}

	weekEnd := weekStart.AddDate(0, 0, 6) // Sunday
	var out []models.DailyLog
	projected := 0

	for d := dayStart(today); !d.After(weekEnd); d = d.AddDate(0, 0, 1) {
		key := dateKey(d)
		log, ok := existing[key]
		if ok && log.Logged() && !overwriteLogged {
			continue
		}
		if !ok {
			log = models.DailyLog{UserID: tpl.UserID, Date: key}
		}
		log.Goal = tpl.TargetFor(d.Weekday())
		log.GoalSource = models.GoalSourceWeeklyPlan
		setAt := now
		log.GoalSetAt = &setAt
		out = append(out, log)
		projected++
	}
	return out, projected
}

// Apply stores the targets on the user's template and projects them onto the
// rest of the current week. The template upsert, the log writes and the
// LastApplied update commit as one batch; on failure nothing is considered
// written. Posting identical targets twice in the same week projects once.
func (s *PlanService) Apply(userID uint, in ApplyPlanInput, today time.Time) (weekTotal, daysProjected int, err error) {
	if err := in.Targets.validate(); err != nil {
		return 0, 0, err
	}
	weekStart := startOfWeek(today)
	if in.WeekStartDate != "" && in.WeekStartDate != dateKey(weekStart) {
		return 0, 0, fmt.Errorf("%w: weekStartDate must be %s (the Monday of the current week)",
			ErrValidation, dateKey(weekStart))
	}

	var tpl models.WeeklyPlanTemplate
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			FirstOrInit(&tpl, models.WeeklyPlanTemplate{UserID: userID}).Error; err != nil {
			return err
		}

		// New targets invalidate the per-week guard so the week is
		// re-projected with the new pattern.
		if in.Targets.changed(&tpl) {
			tpl.LastApplied = ""
		}
		in.Targets.applyTo(&tpl)
		tpl.IsActive = in.IsRecurring

		n, err := s.projectWeek(tx, &tpl, today, in.OverwriteLoggedDays)
		if err != nil {
			return err
		}
		daysProjected = n
		return tx.Save(&tpl).Error
	})
	if txErr != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrAtomicWrite, txErr)
	}
	return tpl.WeekTotal(), daysProjected, nil
}

// EnsureCurrentWeek lazily projects an active recurring template onto the
// current week the first time the week is read. Inactive templates and
// already-applied weeks pass through untouched.
func (s *PlanService) EnsureCurrentWeek(userID uint, today time.Time) (*models.WeeklyPlanTemplate, int, error) {
	var tpl models.WeeklyPlanTemplate
	err := s.db.Where("user_id = ?", userID).First(&tpl).Error
	if err == gorm.ErrRecordNotFound {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	if !tpl.IsActive || tpl.LastApplied == dateKey(startOfWeek(today)) {
		return &tpl, 0, nil
	}

	daysProjected := 0
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		n, err := s.projectWeek(tx, &tpl, today, false)
		if err != nil {
			return err
		}
		daysProjected = n
		return tx.Save(&tpl).Error
	})
	if txErr != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrAtomicWrite, txErr)
	}
	return &tpl, daysProjected, nil
}

// projectWeek runs buildProjection against the stored logs for the current
// week and persists the result inside the caller's transaction.
func (s *PlanService) projectWeek(tx *gorm.DB, tpl *models.WeeklyPlanTemplate, today time.Time, overwriteLogged bool) (int, error) {
	weekStart := startOfWeek(today)
	existing, err := logsByDate(tx, tpl.UserID, dateKey(weekStart), dateKey(weekStart.AddDate(0, 0, 6)))
	if err != nil {
		return 0, err
	}

	logs, projected := buildProjection(tpl, existing, today, time.Now(), overwriteLogged)
	for i := range logs {
		if logs[i].ID == 0 {
			if err := tx.Create(&logs[i]).Error; err != nil {
				return 0, err
			}
		} else if err := tx.Save(&logs[i]).Error; err != nil {
			return 0, err
		}
	}
	if projected > 0 {
		tpl.LastApplied = dateKey(weekStart)
	}
	return projected, nil
}

func (s *PlanService) Template(userID uint) (*models.WeeklyPlanTemplate, error) {
	var tpl models.WeeklyPlanTemplate
	err := s.db.Where("user_id = ?", userID).First(&tpl).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}
