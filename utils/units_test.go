package utils

import "testing"

func TestWeeklyRisk(t *testing.T) {
	cases := []struct {
		drinks int
		want   string
	}{
		{0, "Alcohol free"},
		{1, "Low risk"},
		{14, "Low risk"},
		{15, "Increasing risk"},
		{35, "Increasing risk"},
		{36, "High risk"},
	}
	for _, c := range cases {
		got, err := WeeklyRisk(c.drinks)
		if err != nil {
			t.Fatalf("WeeklyRisk(%d): %v", c.drinks, err)
		}
		if got != c.want {
			t.Errorf("WeeklyRisk(%d) = %q, want %q", c.drinks, got, c.want)
		}
	}

	if _, err := WeeklyRisk(-1); err == nil {
		t.Error("negative count must error")
	}
}
