package domain

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrEmailTaken              = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrRoommateProfileNotFound = errors.New("roommate profile not found")
	ErrMatchNotFound           = errors.New("match not found")
	ErrInvalidMatchStatus      = errors.New("invalid match status")
)
