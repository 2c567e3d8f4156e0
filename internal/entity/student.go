package entity

import "time"

// Student is a registered certificate recipient. Courses is the raw JSON
// array as stored; decoding it (with fallback) happens at the module
// boundary, never here.
type Student struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Name    string    `gorm:"size:255;not null" json:"name"`
	Email   string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Courses string    `gorm:"type:text" json:"courses"`
	AddedAt time.Time `gorm:"column:addedAt;autoCreateTime" json:"addedAt"`
}

func (Student) TableName() string {
	return "students"
}
