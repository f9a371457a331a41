package services

import (
	"testing"

	"github.com/jayspar44/sammy-sub000/models"
)

func TestDayStatus(t *testing.T) {
	tests := []struct {
		name   string
		log    models.DailyLog
		hasLog bool
		date   string
		today  string
		want   string
	}{
		{"at goal", models.DailyLog{Goal: 3, Count: intp(3)}, true, "2025-06-03", "2025-06-05", StatusUnder},
		{"over goal", models.DailyLog{Goal: 3, Count: intp(4)}, true, "2025-06-03", "2025-06-05", StatusOver},
		{"dry day", models.DailyLog{Goal: 3, Count: intp(0)}, true, "2025-06-03", "2025-06-05", StatusUnder},
		{"logged today judged not deferred", models.DailyLog{Goal: 2, Count: intp(1)}, true, "2025-06-05", "2025-06-05", StatusUnder},
		{"unlogged today", models.DailyLog{Goal: 2}, true, "2025-06-05", "2025-06-05", StatusToday},
		{"projected future", models.DailyLog{Goal: 2}, true, "2025-06-07", "2025-06-05", StatusFuture},
		{"future without row", models.DailyLog{}, false, "2025-06-07", "2025-06-05", StatusFuture},
		{"past gap", models.DailyLog{}, false, "2025-06-01", "2025-06-05", StatusNoRecord},
		{"past row without count", models.DailyLog{Goal: 2}, true, "2025-06-03", "2025-06-05", StatusNoRecord},
	}
	for _, tc := range tests {
		if got := dayStatus(tc.log, tc.hasLog, tc.date, tc.today); got != tc.want {
			t.Errorf("%s: status = %q, want %q", tc.name, got, tc.want)
		}
	}
}

// The worked example from the product plan: template 2,2,2,2,3,3,1 projected
// on a Monday, then 1 drink logged Monday and 4 on Friday.
func TestBuildWeekViewWorkedExample(t *testing.T) {
	tpl := testTemplate()
	today := day(t, "2025-06-02")

	projected, n := buildProjection(tpl, nil, today, today, false)
	if n != 7 {
		t.Fatalf("daysProjected = %d, want 7", n)
	}
	if tpl.WeekTotal() != 15 {
		t.Fatalf("weekTotal = %d, want 15", tpl.WeekTotal())
	}

	logs := map[string]models.DailyLog{}
	for _, l := range projected {
		logs[l.Date] = l
	}
	mon := logs["2025-06-02"]
	mon.Count = intp(1)
	logs["2025-06-02"] = mon
	fri := logs["2025-06-06"]
	fri.Count = intp(4)
	logs["2025-06-06"] = fri

	view := buildWeekView(today, logs, today)

	if view.TotalGoal != 15 {
		t.Errorf("totalGoal = %d, want 15", view.TotalGoal)
	}
	if view.TotalCount != 5 {
		t.Errorf("totalCount = %d, want 5", view.TotalCount)
	}
	if view.DaysLogged != 2 {
		t.Errorf("daysLogged = %d, want 2", view.DaysLogged)
	}
	if len(view.Days) != 7 {
		t.Fatalf("week view has %d days, want 7", len(view.Days))
	}

	byDate := map[string]DayEntry{}
	for _, d := range view.Days {
		byDate[d.Date] = d
	}
	if got := byDate["2025-06-02"].Status; got != StatusUnder {
		t.Errorf("Monday status = %q, want under", got)
	}
	if got := byDate["2025-06-06"].Status; got != StatusOver {
		t.Errorf("Friday status = %q, want over", got)
	}
	for _, date := range []string{"2025-06-03", "2025-06-04", "2025-06-05", "2025-06-07", "2025-06-08"} {
		if got := byDate[date].Status; got != StatusFuture {
			t.Errorf("%s status = %q, want future", date, got)
		}
	}
}

func TestBuildRangeSummaryStreakBreaksOnGap(t *testing.T) {
	// Most recent first: 0, 0, <no record>, 0. Streak stops at the gap.
	logs := map[string]models.DailyLog{
		"2025-06-08": {Date: "2025-06-08", Count: intp(0)},
		"2025-06-07": {Date: "2025-06-07", Count: intp(0)},
		// 2025-06-06 missing
		"2025-06-05": {Date: "2025-06-05", Count: intp(0)},
	}

	sum := buildRangeSummary(day(t, "2025-06-01"), day(t, "2025-06-08"), logs)
	if sum.DryStreak != 2 {
		t.Fatalf("dryStreak = %d, want 2 (gap is not an implicit zero)", sum.DryStreak)
	}
	if sum.DryDays != 3 {
		t.Errorf("dryDays = %d, want 3", sum.DryDays)
	}
}

func TestBuildRangeSummaryStreakBreaksOnDrinkingDay(t *testing.T) {
	logs := map[string]models.DailyLog{
		"2025-06-08": {Date: "2025-06-08", Count: intp(0)},
		"2025-06-07": {Date: "2025-06-07", Count: intp(2)},
		"2025-06-06": {Date: "2025-06-06", Count: intp(0)},
	}
	sum := buildRangeSummary(day(t, "2025-06-01"), day(t, "2025-06-08"), logs)
	if sum.DryStreak != 1 {
		t.Fatalf("dryStreak = %d, want 1", sum.DryStreak)
	}
}

func TestBuildRangeSummaryTotals(t *testing.T) {
	logs := map[string]models.DailyLog{
		"2025-06-05": {Date: "2025-06-05", Goal: 2, Count: intp(3)},
		"2025-06-06": {Date: "2025-06-06", Goal: 3, Count: intp(0)},
		"2025-06-07": {Date: "2025-06-07", Goal: 3}, // projected, never logged
	}
	sum := buildRangeSummary(day(t, "2025-06-05"), day(t, "2025-06-08"), logs)

	if sum.TotalDrinks != 3 {
		t.Errorf("totalDrinks = %d, want 3", sum.TotalDrinks)
	}
	if sum.TotalTarget != 8 {
		t.Errorf("totalTarget = %d, want 8", sum.TotalTarget)
	}
	if sum.DryDays != 1 {
		t.Errorf("dryDays = %d, want 1", sum.DryDays)
	}
	if sum.DaysLogged != 2 {
		t.Errorf("daysLogged = %d, want 2", sum.DaysLogged)
	}
}

func TestBuildRangeSummaryEmptyLogsIsNotAnError(t *testing.T) {
	sum := buildRangeSummary(day(t, "2025-06-01"), day(t, "2025-06-30"), nil)
	if sum.TotalDrinks != 0 || sum.TotalTarget != 0 || sum.DryDays != 0 || sum.DryStreak != 0 || sum.DaysLogged != 0 {
		t.Fatalf("new-user range should be all zeroes, got %+v", sum)
	}
}

func TestBuildMilestones(t *testing.T) {
	ms := buildMilestones(12)
	if !ms[0].Achieved || ms[0].Progress != 1 {
		t.Errorf("7-day milestone: %+v, want achieved", ms[0])
	}
	if ms[1].Achieved {
		t.Errorf("30-day milestone achieved at streak 12")
	}
	if got := ms[1].Progress; got != 0.4 {
		t.Errorf("30-day progress = %v, want 0.4", got)
	}
	if ms[2].Achieved || ms[2].Progress >= 1 {
		t.Errorf("90-day milestone: %+v", ms[2])
	}
}
