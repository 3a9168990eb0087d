package employeeform

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type Field string

const (
	FieldFullName        Field = "fullName"
	FieldEmail           Field = "email"
	FieldRole            Field = "role"
	FieldDepartment      Field = "department"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
	FieldSalary          Field = "salary"
)

// Fields lists every form field in display order.
var Fields = []Field{
	FieldFullName,
	FieldEmail,
	FieldRole,
	FieldDepartment,
	FieldSalary,
	FieldPassword,
	FieldConfirmPassword,
}

func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

type Role string

const (
	RoleHR             Role = "hr"
	RoleProjectManager Role = "projectManager"
	RoleDeveloper      Role = "developer"
)

type Department string

const (
	DepartmentHR                Department = "hr"
	DepartmentSoftwareDeveloper Department = "softwareDeveloper"
	DepartmentProjectManagement Department = "projectManagement"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FormOptions struct {
	Roles       []Option `json:"roles"`
	Departments []Option `json:"departments"`
}

// Options returns the choices offered by the role and department selects.
func Options() FormOptions {
	return FormOptions{
		Roles: []Option{
			{Value: string(RoleHR), Label: "HR"},
			{Value: string(RoleProjectManager), Label: "Project Manager"},
			{Value: string(RoleDeveloper), Label: "Developer"},
		},
		Departments: []Option{
			{Value: string(DepartmentHR), Label: "HR"},
			{Value: string(DepartmentSoftwareDeveloper), Label: "Software Developer"},
			{Value: string(DepartmentProjectManagement), Label: "Project Management"},
		},
	}
}

// SalaryInput is the salary exactly as typed. It accepts a JSON number or string
// so that "required" and "numeric" can both be reported.
type SalaryInput string

func (s *SalaryInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = SalaryInput(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = SalaryInput(n.String())
	return nil
}

// Number parses the input. ok is false for blank or non-numeric text.
func (s SalaryInput) Number() (float64, bool) {
	raw := strings.TrimSpace(string(s))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// Clamp replaces a negative numeric input with "0". Anything else is left as is.
func (s SalaryInput) Clamp() SalaryInput {
	if n, ok := s.Number(); ok && n < 0 {
		return "0"
	}
	return s
}

type FormValues struct {
	FullName        string      `json:"fullName"`
	Email           string      `json:"email"`
	Role            Role        `json:"role"`
	Department      Department  `json:"department"`
	Password        string      `json:"password"`
	ConfirmPassword string      `json:"confirmPassword"`
	Salary          SalaryInput `json:"salary"`
}

// NewFormValues returns the values of a freshly opened form.
func NewFormValues() FormValues {
	return FormValues{}
}

// Get returns the raw text of a field.
func (v FormValues) Get(f Field) (string, bool) {
	switch f {
	case FieldFullName:
		return v.FullName, true
	case FieldEmail:
		return v.Email, true
	case FieldRole:
		return string(v.Role), true
	case FieldDepartment:
		return string(v.Department), true
	case FieldPassword:
		return v.Password, true
	case FieldConfirmPassword:
		return v.ConfirmPassword, true
	case FieldSalary:
		return string(v.Salary), true
	}
	return "", false
}

// set applies input-time normalization (salary clamping) and reports unknown fields.
func (v *FormValues) set(f Field, value string) bool {
	switch f {
	case FieldFullName:
		v.FullName = value
	case FieldEmail:
		v.Email = value
	case FieldRole:
		v.Role = Role(value)
	case FieldDepartment:
		v.Department = Department(value)
	case FieldPassword:
		v.Password = value
	case FieldConfirmPassword:
		v.ConfirmPassword = value
	case FieldSalary:
		v.Salary = SalaryInput(value).Clamp()
	default:
		return false
	}
	return true
}

// Payload is what the form hands to its collaborator. It never carries the
// password confirmation.
type Payload struct {
	FullName   string     `json:"fullName"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	Department Department `json:"department"`
	Password   string     `json:"password"`
	Salary     float64    `json:"salary"`
}

func newPayload(v FormValues) Payload {
	salary, _ := v.Salary.Number()
	return Payload{
		FullName:   strings.TrimSpace(v.FullName),
		Email:      strings.TrimSpace(v.Email),
		Role:       v.Role,
		Department: v.Department,
		Password:   v.Password,
		Salary:     salary,
	}
}
