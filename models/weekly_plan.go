package models

import (
	"time"

	"gorm.io/gorm"
)

// WeeklyPlanTemplate holds each user's recurring 7-day drink targets.
// LastApplied is the Monday (YYYY-MM-DD) of the last week the template was
// projected onto; it guards against projecting the same week twice.
type WeeklyPlanTemplate struct {
	gorm.Model
	UserID      uint `gorm:"uniqueIndex;not null" json:"user_id"`
	Monday      int  `json:"monday"`
	Tuesday     int  `json:"tuesday"`
	Wednesday   int  `json:"wednesday"`
	Thursday    int  `json:"thursday"`
	Friday      int  `json:"friday"`
	Saturday    int  `json:"saturday"`
	Sunday      int  `json:"sunday"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	LastApplied string `gorm:"size:10" json:"last_applied"`
}

// TargetFor returns the template value for a weekday.
func (t *WeeklyPlanTemplate) TargetFor(d time.Weekday) int {
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

func (t *WeeklyPlanTemplate) WeekTotal() int {
	return t.Monday + t.Tuesday + t.Wednesday + t.Thursday + t.Friday + t.Saturday + t.Sunday
}
