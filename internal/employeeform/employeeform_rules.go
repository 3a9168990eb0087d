package employeeform

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	MinFullNameLength = 3
	MinPasswordLength = 8
	MinSalary         = 1000
	MaxSalary         = 1_000_000

	// PasswordSymbols is the set a password must draw at least one symbol from.
	PasswordSymbols = "@$!%*?&"
)

var (
	fullNamePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)

	// validator.Validate caches struct metadata and is safe for concurrent use.
	validate = validator.New()
)

// Rule is a pure check over the whole form. Message is reported when Check fails.
type Rule struct {
	Message string
	Check   func(v FormValues) bool
}

type fieldRules struct {
	field Field
	rules []Rule
}

// ValidationResult maps a field to its first failing rule message.
// A field is valid iff it has no entry.
type ValidationResult map[Field]string

func (r ValidationResult) Valid() bool {
	return len(r) == 0
}

func (r ValidationResult) Error(f Field) string {
	return r[f]
}

// ToMap renders the result with plain string keys for JSON responses.
func (r ValidationResult) ToMap() map[string]string {
	out := make(map[string]string, len(r))
	for f, msg := range r {
		out[string(f)] = msg
	}
	return out
}

// ruleSet is evaluated in order; the first failing rule per field wins.
var ruleSet = []fieldRules{
	{FieldFullName, []Rule{
		{"Full name is required", func(v FormValues) bool { return notBlank(v.FullName) }},
		{"Full name must be at least 3 characters", func(v FormValues) bool {
			return utf8.RuneCountInString(strings.TrimSpace(v.FullName)) >= MinFullNameLength
		}},
		{"Full name can only contain letters and spaces", func(v FormValues) bool {
			return fullNamePattern.MatchString(strings.TrimSpace(v.FullName))
		}},
	}},
	{FieldEmail, []Rule{
		{"Email is required", func(v FormValues) bool { return notBlank(v.Email) }},
		{"Invalid email address", func(v FormValues) bool {
			return validate.Var(strings.TrimSpace(v.Email), "email") == nil
		}},
	}},
	{FieldRole, []Rule{
		{"Role is required", func(v FormValues) bool { return notBlank(string(v.Role)) }},
	}},
	{FieldDepartment, []Rule{
		{"Department is required", func(v FormValues) bool { return notBlank(string(v.Department)) }},
	}},
	{FieldPassword, []Rule{
		{"Password is required", func(v FormValues) bool { return v.Password != "" }},
		{"Password must be at least 8 characters", func(v FormValues) bool {
			return utf8.RuneCountInString(v.Password) >= MinPasswordLength
		}},
		{"Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character", func(v FormValues) bool {
			return satisfiesPasswordPolicy(v.Password)
		}},
	}},
	{FieldConfirmPassword, []Rule{
		{"Please confirm your password", func(v FormValues) bool { return v.ConfirmPassword != "" }},
		// Cross-field: compared against the password submitted alongside it.
		{"Passwords must match", func(v FormValues) bool { return v.ConfirmPassword == v.Password }},
	}},
	{FieldSalary, []Rule{
		{"Salary is required", func(v FormValues) bool { return notBlank(string(v.Salary)) }},
		{"Salary must be a number", func(v FormValues) bool {
			_, ok := v.Salary.Number()
			return ok
		}},
		{"Salary must be a positive number", func(v FormValues) bool {
			n, _ := v.Salary.Number()
			return n >= 0
		}},
		{"Salary must be at least 1000", func(v FormValues) bool {
			n, _ := v.Salary.Number()
			return n >= MinSalary
		}},
		{"Salary cannot exceed 1,000,000", func(v FormValues) bool {
			n, _ := v.Salary.Number()
			return n <= MaxSalary
		}},
	}},
}

// Validate evaluates every field against values. It has no side effects.
func Validate(values FormValues) ValidationResult {
	result := make(ValidationResult)
	for _, fr := range ruleSet {
		if msg := firstFailure(fr.rules, values); msg != "" {
			result[fr.field] = msg
		}
	}
	return result
}

// ValidateField evaluates a single field. ok is false for an unknown field.
func ValidateField(values FormValues, f Field) (msg string, ok bool) {
	for _, fr := range ruleSet {
		if fr.field == f {
			return firstFailure(fr.rules, values), true
		}
	}
	return "", false
}

func firstFailure(rules []Rule, values FormValues) string {
	for _, r := range rules {
		if !r.Check(values) {
			return r.Message
		}
	}
	return ""
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

func satisfiesPasswordPolicy(p string) bool {
	var lower, upper, digit, symbol bool
	for _, r := range p {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(PasswordSymbols, r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
