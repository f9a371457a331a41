package models

import (
	"time"

	"gorm.io/gorm"
)

// TypicalWeek is the user's self-reported historical drinking pattern.
// Same seven day fields as the plan template, but it is a reference
// baseline for savings comparisons, never a target, and the projector
// never writes it.
type TypicalWeek struct {
	gorm.Model
	UserID    uint `gorm:"uniqueIndex;not null" json:"user_id"`
	Monday    int  `json:"monday"`
	Tuesday   int  `json:"tuesday"`
	Wednesday int  `json:"wednesday"`
	Thursday  int  `json:"thursday"`
	Friday    int  `json:"friday"`
	Saturday  int  `json:"saturday"`
	Sunday    int  `json:"sunday"`
}

// ValueFor returns the baseline value for a weekday.
func (t *TypicalWeek) ValueFor(d time.Weekday) int {
	switch d {
	case time.Monday:
		return t.Monday
	case time.Tuesday:
		return t.Tuesday
	case time.Wednesday:
		return t.Wednesday
	case time.Thursday:
		return t.Thursday
	case time.Friday:
		return t.Friday
	case time.Saturday:
		return t.Saturday
	default:
		return t.Sunday
	}
}

func (t *TypicalWeek) WeekTotal() int {
	return t.Monday + t.Tuesday + t.Wednesday + t.Thursday + t.Friday + t.Saturday + t.Sunday
}
