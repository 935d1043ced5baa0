package models

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrModuleNotFound     = errors.New("module not found")
	ErrProgressNotFound   = errors.New("progress record not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrStoryNotFound      = errors.New("story not found")
	ErrDuplicateReference = errors.New("payment reference already processed")
	ErrPaymentMismatch    = errors.New("payment does not belong to this user")
	ErrInvalidPlan        = errors.New("unknown subscription plan")
	ErrPaymentNotVerified = errors.New("payment was not successful")
	ErrRateLimited        = errors.New("too many submissions, try again later")
	ErrUpstream           = errors.New("upstream provider request failed")
)
