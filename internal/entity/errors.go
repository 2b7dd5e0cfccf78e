package entity

import "errors"

var (
	ErrMemberNotFound       = errors.New("member not found")
	ErrDuplicateMemberID    = errors.New("member_id already exists")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrRegistrationNotFound = errors.New("retreat registration not found")
)
