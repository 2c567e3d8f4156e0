package entity

import "time"

// Certificate binds one student to one template with the course metadata
// shared by a batch. CertificateID is the public code; the numeric ID never
// leaves the dashboard.
type Certificate struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CertificateID   string    `gorm:"column:certificateId;size:32;uniqueIndex;not null" json:"certificateId"`
	TemplateID      uint      `gorm:"column:templateId;not null" json:"templateId"`
	StudentID       uint      `gorm:"column:studentId;not null" json:"studentId"`
	CourseName      string    `gorm:"column:courseName;size:255;not null" json:"courseName"`
	CompletionDate  time.Time `gorm:"column:completionDate;not null" json:"completionDate"`
	InstructorName  string    `gorm:"column:instructorName;size:255;not null" json:"instructorName"`
	CertificateData *string   `gorm:"column:certificateData;type:text" json:"certificateData"`
	CreatedAt       time.Time `gorm:"column:createdAt;autoCreateTime" json:"createdAt"`

	Template Template `gorm:"foreignKey:TemplateID" json:"-"`
	Student  Student  `gorm:"foreignKey:StudentID" json:"-"`
}

func (Certificate) TableName() string {
	return "certificates"
}
