package employeeformerrors

import (
	"net/http"

	"github.com/Ziyadh-ali/workwave-client-sub001/internal/shared/apperror"
)

var (
	ErrUnknownField = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown form field",
		http.StatusBadRequest,
	)
	ErrFormInvalid = apperror.New(
		apperror.CodeValidationFailed,
		"Please fix the highlighted fields",
		http.StatusUnprocessableEntity,
	)
	ErrAlreadySubmitted = apperror.New(
		apperror.CodeInvalidState,
		"Form has already been submitted",
		http.StatusConflict,
	)
)
