package service

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"
)

var (
	ErrTitleRequired     = errors.New("title is required")
	ErrNameRequired      = errors.New("name is required")
	ErrContentRequired   = errors.New("content is required")
	ErrIDRequired        = errors.New("id is required")
	ErrAmountNotPositive = errors.New("amount must be positive")
	ErrDueDateRequired   = errors.New("due date is required")
	ErrSplitMismatch     = errors.New("split amounts do not add up to the expense amount")
	ErrNoParticipants    = errors.New("expense needs at least one participant")
	ErrEmailRequired     = errors.New("email is required")
	ErrNoGroup           = errors.New("household has no group")
)

func invalidArgument(err error) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, err)
}

func invalidField(field string, err error) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%s: %w", field, err))
}
