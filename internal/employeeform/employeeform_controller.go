package employeeform

import (
	"context"

	employeeformerrors "github.com/Ziyadh-ali/workwave-client-sub001/internal/employeeform/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employeeform_controller.go -destination=mock/employeeform_controller_mock.go -package=mock

// UserAdder is the parent collaborator that receives a submitted form.
type UserAdder interface {
	AddUser(ctx context.Context, payload Payload) error
}

// AddUserFunc adapts a plain function to UserAdder.
type AddUserFunc func(ctx context.Context, payload Payload) error

func (f AddUserFunc) AddUser(ctx context.Context, payload Payload) error {
	return f(ctx, payload)
}

type State int

const (
	StateIdle State = iota
	StateIdleWithErrors
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateIdleWithErrors:
		return "idle_with_errors"
	case StateSubmitted:
		return "submitted"
	}
	return "unknown"
}

// Controller owns the state of one open form. It is not safe for concurrent use.
type Controller struct {
	values    FormValues
	touched   map[Field]bool
	errors    ValidationResult
	state     State
	onAddUser UserAdder
	logger    *zap.Logger
}

func NewController(onAddUser UserAdder, logger ...*zap.Logger) *Controller {
	l := zap.L().Named("employeeform.controller")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeeform.controller")
	}
	c := &Controller{onAddUser: onAddUser, logger: l}
	c.Reset()
	return c
}

func (c *Controller) Values() FormValues { return c.values }

func (c *Controller) State() State { return c.state }

func (c *Controller) Touched(f Field) bool { return c.touched[f] }

// Error returns the last computed error for f, touched or not.
func (c *Controller) Error(f Field) string { return c.errors[f] }

// VisibleError returns the error for f only once the user has touched it.
func (c *Controller) VisibleError(f Field) string {
	if !c.touched[f] {
		return ""
	}
	return c.errors[f]
}

// Errors returns a copy of the current error map.
func (c *Controller) Errors() ValidationResult {
	out := make(ValidationResult, len(c.errors))
	for f, msg := range c.errors {
		out[f] = msg
	}
	return out
}

// SetField updates one value. Touched fields are revalidated right away,
// and so is a touched confirmPassword when the password changes.
func (c *Controller) SetField(f Field, value string) error {
	if !c.values.set(f, value) {
		return employeeformerrors.ErrUnknownField
	}
	if c.touched[f] {
		c.revalidate(f)
	}
	if f == FieldPassword && c.touched[FieldConfirmPassword] {
		c.revalidate(FieldConfirmPassword)
	}
	return nil
}

// Load replaces all values at once, applying the same input normalization as SetField.
func (c *Controller) Load(values FormValues) {
	for _, f := range Fields {
		v, _ := values.Get(f)
		_ = c.SetField(f, v)
	}
}

// MarkTouched flags f as visited (on blur) and computes its error.
func (c *Controller) MarkTouched(f Field) error {
	if !f.Valid() {
		return employeeformerrors.ErrUnknownField
	}
	c.touched[f] = true
	c.revalidate(f)
	return nil
}

// Submit validates every field and marks them all touched. Only a fully valid
// form reaches the collaborator, with the password confirmation stripped.
func (c *Controller) Submit(ctx context.Context) (ValidationResult, error) {
	if c.state == StateSubmitted {
		return c.Errors(), employeeformerrors.ErrAlreadySubmitted
	}

	result := Validate(c.values)
	for _, f := range Fields {
		c.touched[f] = true
	}
	c.errors = result

	if !result.Valid() {
		c.state = StateIdleWithErrors
		c.logger.Debug("employee form submit rejected", zap.Int("invalid_fields", len(result)))
		return result, employeeformerrors.ErrFormInvalid.WithDetails(result.ToMap())
	}

	payload := newPayload(c.values)
	if c.onAddUser != nil {
		if err := c.onAddUser.AddUser(ctx, payload); err != nil {
			c.state = StateIdle
			c.logger.Warn("employee form add user failed",
				zap.String("email", payload.Email),
				zap.Error(err),
			)
			return result, err
		}
	}

	c.state = StateSubmitted
	c.logger.Info("employee form submitted",
		zap.String("email", payload.Email),
		zap.String("role", string(payload.Role)),
		zap.String("department", string(payload.Department)),
	)
	return result, nil
}

// Reset returns the controller to a freshly opened form.
func (c *Controller) Reset() {
	c.values = NewFormValues()
	c.touched = make(map[Field]bool, len(Fields))
	c.errors = make(ValidationResult)
	c.state = StateIdle
}

func (c *Controller) revalidate(f Field) {
	msg, _ := ValidateField(c.values, f)
	if msg == "" {
		delete(c.errors, f)
	} else {
		c.errors[f] = msg
	}
	if c.state == StateIdleWithErrors && len(c.errors) == 0 {
		c.state = StateIdle
	}
}
