package entity

import "time"

// Template is a certificate design. Thumbnail is an opaque base64 payload
// or URL; Placeholders is the raw JSON array of positioned text slots.
type Template struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Thumbnail    *string   `gorm:"type:text" json:"thumbnail"`
	Placeholders *string   `gorm:"type:text" json:"placeholders"`
	CreatedAt    time.Time `gorm:"column:createdAt;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updatedAt;autoUpdateTime" json:"updatedAt"`
}

func (Template) TableName() string {
	return "templates"
}
