package services

import (
	"errors"
	"testing"
	"time"

	"github.com/jayspar44/sammy-sub000/models"
)

// 2025-06-02 is a Monday.
func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := parseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func intp(n int) *int { return &n }

func testTemplate() *models.WeeklyPlanTemplate {
	return &models.WeeklyPlanTemplate{
		UserID: 1,
		Monday: 2, Tuesday: 2, Wednesday: 2, Thursday: 2,
		Friday: 3, Saturday: 3, Sunday: 1,
	}
}

func TestBuildProjectionFullWeekOnMonday(t *testing.T) {
	tpl := testTemplate()
	now := time.Now()

	logs, n := buildProjection(tpl, nil, day(t, "2025-06-02"), now, false)
	if n != 7 {
		t.Fatalf("daysProjected = %d, want 7", n)
	}

	wantGoals := map[string]int{
		"2025-06-02": 2, "2025-06-03": 2, "2025-06-04": 2, "2025-06-05": 2,
		"2025-06-06": 3, "2025-06-07": 3, "2025-06-08": 1,
	}
	for _, l := range logs {
		if l.Goal != wantGoals[l.Date] {
			t.Errorf("goal on %s = %d, want %d", l.Date, l.Goal, wantGoals[l.Date])
		}
		if l.GoalSource != models.GoalSourceWeeklyPlan {
			t.Errorf("goal source on %s = %q", l.Date, l.GoalSource)
		}
		if l.Count != nil {
			t.Errorf("projection must not set a count on %s", l.Date)
		}
	}
}

func TestBuildProjectionMidWeekOnlyTouchesRemainingDays(t *testing.T) {
	tpl := testTemplate()

	logs, n := buildProjection(tpl, nil, day(t, "2025-06-04"), time.Now(), false)
	if n != 5 {
		t.Fatalf("daysProjected = %d, want 5 (Wed-Sun)", n)
	}
	for _, l := range logs {
		if l.Date < "2025-06-04" {
			t.Errorf("projected %s, before today", l.Date)
		}
	}
	if logs[0].Date != "2025-06-04" || logs[len(logs)-1].Date != "2025-06-08" {
		t.Errorf("window = %s..%s, want 2025-06-04..2025-06-08", logs[0].Date, logs[len(logs)-1].Date)
	}
}

func TestBuildProjectionIdempotentWithinWeek(t *testing.T) {
	tpl := testTemplate()
	tpl.LastApplied = "2025-06-02"

	logs, n := buildProjection(tpl, nil, day(t, "2025-06-05"), time.Now(), false)
	if n != 0 || len(logs) != 0 {
		t.Fatalf("already-applied week projected %d days, want 0", n)
	}
}

func TestBuildProjectionLoggedDayProtection(t *testing.T) {
	existing := map[string]models.DailyLog{
		"2025-06-06": {UserID: 1, Date: "2025-06-06", Goal: 5, GoalSource: models.GoalSourceManual, Count: intp(2)},
	}

	// Default: a logged day keeps its goal.
	logs, n := buildProjection(testTemplate(), existing, day(t, "2025-06-04"), time.Now(), false)
	if n != 4 {
		t.Fatalf("daysProjected = %d, want 4 (Friday already logged)", n)
	}
	for _, l := range logs {
		if l.Date == "2025-06-06" {
			t.Errorf("logged day was retargeted without overwriteLoggedDays")
		}
	}

	// Opt-in overwrite retargets the goal but keeps the count.
	logs, n = buildProjection(testTemplate(), existing, day(t, "2025-06-04"), time.Now(), true)
	if n != 5 {
		t.Fatalf("daysProjected = %d, want 5 with overwrite", n)
	}
	for _, l := range logs {
		if l.Date == "2025-06-06" {
			if l.Goal != 3 {
				t.Errorf("overwritten goal = %d, want 3", l.Goal)
			}
			if l.Count == nil || *l.Count != 2 {
				t.Errorf("overwrite must preserve the logged count")
			}
		}
	}
}

func TestWeeklyTargetsValidate(t *testing.T) {
	bad := WeeklyTargets{Monday: 2, Thursday: -1}
	if err := bad.validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("negative target: err = %v, want ErrValidation", err)
	}
	if err := (WeeklyTargets{}).validate(); err != nil {
		t.Fatalf("all-zero targets should be valid, got %v", err)
	}
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2025-06-02", "2025-06-02"}, // Monday maps to itself
		{"2025-06-04", "2025-06-02"},
		{"2025-06-08", "2025-06-02"}, // Sunday belongs to the ISO week it ends
		{"2025-06-09", "2025-06-09"},
	}
	for _, c := range cases {
		if got := dateKey(startOfWeek(day(t, c.in))); got != c.want {
			t.Errorf("startOfWeek(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}
