package models

import "time"

// ProgressMark records that a student completed a class. Existence of the
// (StudentEmail, ClassID) pair is the completion signal; there is no separate
// boolean column.
type ProgressMark struct {
	StudentEmail string    `json:"studentEmail" gorm:"primaryKey"`
	ClassID      string    `json:"classId" gorm:"primaryKey"`
	CompletedAt  time.Time `json:"completedAt"`
}

func (ProgressMark) TableName() string {
	return "progress_marks"
}
