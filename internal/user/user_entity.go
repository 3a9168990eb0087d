package user

import (
	"time"

	"github.com/Ziyadh-ali/workwave-client-sub001/internal/employeeform"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	Role         employeeform.Role
	Department   employeeform.Department
	Salary       float64
	PasswordHash []byte
	IsActive     bool
	CreatedAt    time.Time
}
