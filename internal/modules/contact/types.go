package contact

import "github.com/havenridge/leasing/internal/models"

// CreateSubmissionDTO is the public contact form payload.
type CreateSubmissionDTO struct {
	Name     string                 `json:"name"     binding:"required,max=255"`
	Email    string                 `json:"email"    binding:"required,email,max=255"`
	Phone    string                 `json:"phone"    binding:"required,min=10,max=32"`
	Message  *string                `json:"message"  binding:"omitempty,max=5000"`
	Type     models.ContactType     `json:"type"     binding:"omitempty,oneof=general schedule_visit apply visit"`
	Metadata map[string]interface{} `json:"metadata"`
}
