package models

import "gorm.io/datatypes"

// ContactType classifies a contact form submission.
type ContactType string

const (
	ContactGeneral       ContactType = "general"
	ContactScheduleVisit ContactType = "schedule_visit"
	ContactApply         ContactType = "apply"
	ContactVisit         ContactType = "visit"
)

// IsVisitRequest reports whether the submission asks for a tour.
func (t ContactType) IsVisitRequest() bool {
	return t == ContactVisit || t == ContactScheduleVisit
}

const ContactStatusNew = "new"

// ContactSubmissionModel is a lead created from the public contact form.
// Rows are never updated after insert.
type ContactSubmissionModel struct {
	Base
	Name     string            `json:"name"     gorm:"not null"`
	Email    string            `json:"email"    gorm:"not null"`
	Phone    string            `json:"phone"    gorm:"size:32;not null"`
	Message  *string           `json:"message"  gorm:"type:text"`
	Type     ContactType       `json:"type"     gorm:"size:32;not null;index"`
	Metadata datatypes.JSONMap `json:"metadata"`
	Status   string            `json:"status"   gorm:"size:32;not null"`
}

func (ContactSubmissionModel) TableName() string { return "contact_submissions" }
