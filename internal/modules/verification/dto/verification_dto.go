package dto

type VerifyRequest struct {
	CertificateID string `json:"certificateId" binding:"omitempty,max=64"`
}

// VerifyResponse is the public authenticity payload. It intentionally has
// no field for any internal numeric id. IssueDate mirrors CompletionDate
// for older dashboard clients.
type VerifyResponse struct {
	IsValid        bool    `json:"isValid"`
	Message        string  `json:"message,omitempty"`
	CertificateID  string  `json:"certificateId,omitempty"`
	StudentName    string  `json:"studentName,omitempty"`
	StudentEmail   string  `json:"studentEmail,omitempty"`
	CourseName     string  `json:"courseName,omitempty"`
	CompletionDate *string `json:"completionDate,omitempty"`
	IssueDate      *string `json:"issueDate,omitempty"`
	InstructorName string  `json:"instructorName,omitempty"`
	TemplateName   string  `json:"templateName,omitempty"`
}
