package user

import (
	"errors"
	"net/http"

	"github.com/Ziyadh-ali/workwave-client-sub001/internal/shared/apperror"
	usererrors "github.com/Ziyadh-ali/workwave-client-sub001/internal/user/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, errRecordNotFound) {
		return usererrors.ErrUserNotFound
	}
	if errors.Is(err, errDuplicateEmail) {
		return usererrors.ErrUserAlreadyExists
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "Failed to access user directory", http.StatusInternalServerError)
}
