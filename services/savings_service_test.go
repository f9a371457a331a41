package services

import (
	"errors"
	"testing"

	"github.com/jayspar44/sammy-sub000/models"
)

func testBaseline() *models.TypicalWeek {
	return &models.TypicalWeek{
		UserID: 1,
		Monday: 3, Tuesday: 3, Wednesday: 3, Thursday: 3,
		Friday: 5, Saturday: 5, Sunday: 2,
	}
}

func TestBuildCumulativeSeriesTargetMode(t *testing.T) {
	// Window Mon 2025-06-02 .. Sun 2025-06-08.
	logs := map[string]models.DailyLog{
		"2025-06-02": {Date: "2025-06-02", Goal: 2, Count: intp(1)}, // +1
		"2025-06-03": {Date: "2025-06-03", Goal: 2, Count: intp(4)}, // -2
		"2025-06-04": {Date: "2025-06-04", Goal: 2},                 // gap: +2 (stayed at reference)
		"2025-06-06": {Date: "2025-06-06", Goal: 3, Count: intp(0)}, // +3
	}

	series, summary, err := buildCumulativeSeries(ModeTarget, 7, logs, nil, day(t, "2025-06-08"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 7 {
		t.Fatalf("series has %d points, want 7", len(series))
	}
	if series[0].Date != "2025-06-02" || series[6].Date != "2025-06-08" {
		t.Fatalf("window = %s..%s", series[0].Date, series[6].Date)
	}

	// Days without a log row at all contribute goal 0 - actual 0 = 0.
	want := []int{1, -2, 2, 0, 3, 0, 0}
	total := 0
	for i, p := range series {
		if p.Daily != want[i] {
			t.Errorf("daily[%d] (%s) = %d, want %d", i, p.Date, p.Daily, want[i])
		}
		total += p.Daily
		if p.Cumulative != total {
			t.Errorf("cumulative[%d] = %d, want running sum %d", i, p.Cumulative, total)
		}
	}
	if summary.TotalSaved != total {
		t.Errorf("totalSaved = %d, want %d", summary.TotalSaved, total)
	}
	if summary.TotalSaved != series[len(series)-1].Cumulative {
		t.Errorf("totalSaved must equal the final cumulative point")
	}
}

func TestBuildCumulativeSeriesBenchmarkMode(t *testing.T) {
	logs := map[string]models.DailyLog{
		"2025-06-06": {Date: "2025-06-06", Count: intp(1)}, // Friday, baseline 5: +4
	}

	series, _, err := buildCumulativeSeries(ModeBenchmark, 7, logs, testBaseline(), day(t, "2025-06-08"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Unlogged Monday counts the full baseline as saved.
	if series[0].Daily != 3 {
		t.Errorf("Monday daily = %d, want baseline 3", series[0].Daily)
	}
	if series[4].Daily != 4 {
		t.Errorf("Friday daily = %d, want 4", series[4].Daily)
	}
	wantTotal := 3 + 3 + 3 + 3 + 4 + 5 + 2
	if got := series[6].Cumulative; got != wantTotal {
		t.Errorf("total = %d, want %d", got, wantTotal)
	}
}

func TestBuildCumulativeSeriesBenchmarkNeedsBaseline(t *testing.T) {
	_, _, err := buildCumulativeSeries(ModeBenchmark, 90, nil, nil, day(t, "2025-06-08"))
	if !errors.Is(err, ErrUnsupportedMode) {
		t.Fatalf("err = %v, want ErrUnsupportedMode", err)
	}
}

func TestBuildCumulativeSeriesRejectsUnknownMode(t *testing.T) {
	_, _, err := buildCumulativeSeries("weekly", 90, nil, nil, day(t, "2025-06-08"))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestAvgPerWeekRounding(t *testing.T) {
	logs := map[string]models.DailyLog{}
	// 10 saved over 90 days -> 10/(90/7) = 0.777... -> 0.8
	for _, d := range []string{"2025-06-01", "2025-06-02"} {
		logs[d] = models.DailyLog{Date: d, Goal: 5, Count: intp(0)}
	}
	_, summary, err := buildCumulativeSeries(ModeTarget, 90, logs, nil, day(t, "2025-06-08"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalSaved != 10 {
		t.Fatalf("totalSaved = %d, want 10", summary.TotalSaved)
	}
	if summary.AvgPerWeek != 0.8 {
		t.Errorf("avgPerWeek = %v, want 0.8", summary.AvgPerWeek)
	}
}

func TestDownsampleSeries(t *testing.T) {
	series := make([]SeriesPoint, 180)
	for i := range series {
		series[i] = SeriesPoint{Date: day(t, "2025-01-01").AddDate(0, 0, i).Format(dateLayout), Cumulative: i}
	}

	out := DownsampleSeries(series, MaxChartPoints)
	if len(out) > MaxChartPoints+1 {
		t.Fatalf("downsampled to %d points, want <= %d", len(out), MaxChartPoints+1)
	}
	if out[len(out)-1].Date != series[len(series)-1].Date {
		t.Errorf("final point must survive downsampling")
	}

	short := series[:50]
	if got := DownsampleSeries(short, MaxChartPoints); len(got) != 50 {
		t.Errorf("short series must pass through untouched, got %d points", len(got))
	}
}

func TestMoneySaved(t *testing.T) {
	cases := []struct {
		name  string
		sum   RangeSummary
		price float64
		want  float64
	}{
		{"under target", RangeSummary{TotalTarget: 15, TotalDrinks: 5}, 4.5, 45},
		{"over target floors at zero", RangeSummary{TotalTarget: 10, TotalDrinks: 14}, 4.5, 0},
		{"no price configured", RangeSummary{TotalTarget: 15, TotalDrinks: 5}, 0, 0},
	}
	for _, tc := range cases {
		if got := MoneySaved(tc.sum, tc.price); got != tc.want {
			t.Errorf("%s: moneySaved = %v, want %v", tc.name, got, tc.want)
		}
	}
}
