package domain

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrInvalidEvent      = errors.New("invalid event")
	ErrSoldOut           = errors.New("not enough seats left")
	ErrAlreadyOnWaitlist = errors.New("already on waitlist")
	ErrWaitlistEmpty     = errors.New("waitlist is empty")
	ErrEventCancelled    = errors.New("event is cancelled")
)
