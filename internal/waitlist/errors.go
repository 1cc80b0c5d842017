package waitlist

import (
	"fmt"

	"sab_waitlist/internal/apperr"
)

func invalidArgument(format string, args ...any) *apperr.Error {
	return apperr.New(apperr.CodeInvalidArgument, fmt.Sprintf(format, args...))
}

func notFound() *apperr.Error {
	return apperr.New(apperr.CodeNotFound, "User not in waitlist")
}

func alreadyExists() *apperr.Error {
	return apperr.New(apperr.CodeAlreadyExists, "User already in waitlist")
}
