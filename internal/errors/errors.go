// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotCandidate       = errors.New("user is not a candidate account")
	ErrNotEstablishment   = errors.New("user is not an establishment account")
	ErrProfileMismatch    = errors.New("profile does not match the account type")
)

// Auth errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("you do not have access to this resource")
	ErrInvalidToken = errors.New("invalid token")
)

// Job errors
var (
	ErrJobNotFound = errors.New("job not found")
	ErrJobInactive = errors.New("job is not accepting applications")
)

// Application errors
var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrAlreadyApplied           = errors.New("you have already applied to this job")
	ErrApplicationNotAccepted   = errors.New("application must be accepted before creating a mission")
	ErrUnknownApplicationStatus = errors.New("unknown application status")
)

// Mission errors
var (
	ErrMissionNotFound          = errors.New("mission not found")
	ErrUnknownMissionStatus     = errors.New("unknown mission status")
	ErrInvalidMissionTransition = errors.New("mission status transition not allowed")
)

// Work hours errors
var (
	ErrWorkHoursNotFound        = errors.New("work hours entry not found")
	ErrDateOutsideMission       = errors.New("entry date must fall within the mission period")
	ErrWorkHoursAlreadyReviewed = errors.New("work hours entry has already been validated or rejected")
)

// Payment errors
var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrUnknownPaymentStatus       = errors.New("unknown payment status")
	ErrPaymentAlreadyPaid         = errors.New("payment is already paid and can no longer change")
	ErrInvalidPaymentTransition   = errors.New("payment status may only advance from pending to processed to paid")
	ErrInsufficientValidatedHours = errors.New("claimed hours exceed validated work hours for the period")
)

// Notification errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// Message errors
var (
	ErrMessageToSelf     = errors.New("cannot send a message to yourself")
	ErrRecipientNotFound = errors.New("message recipient not found")
)

// Rating errors
var (
	ErrAlreadyRated        = errors.New("you have already rated this mission")
	ErrMissionNotCompleted = errors.New("mission must be completed before rating")
)
