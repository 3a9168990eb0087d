package user

import "github.com/Ziyadh-ali/workwave-client-sub001/internal/employeeform"

type UserResponse struct {
	ID         string  `json:"id"`
	FullName   string  `json:"fullName"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
	IsActive   bool    `json:"isActive"`
	CreatedAt  string  `json:"createdAt"`
}

// FormResponse is what the admin panel needs to open the add-user modal.
type FormResponse struct {
	Values  employeeform.FormValues  `json:"values"`
	Options employeeform.FormOptions `json:"options"`
}

// ValidateFormRequest validates the whole form, or only Field when set (on blur).
type ValidateFormRequest struct {
	Values *employeeform.FormValues `json:"values" binding:"required"`
	Field  string                   `json:"field"`
}

type ValidateFormResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}
