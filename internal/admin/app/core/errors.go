package core

import "errors"

var (
	ErrDBConn = errors.New("db connection failure")
	ErrFetch  = errors.New("failed to fetch orders from store")

	ErrOrderNotFound     = errors.New("order not found")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrPromotionNotFound = errors.New("promotion not found")

	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrInvalidWindow     = errors.New("window start must not be after end")
	ErrRefreshInFlight   = errors.New("refresh already in progress")

	ErrFieldIsEmpty    = errors.New("field is empty")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrUnknownCategory = errors.New("unknown menu category")
	ErrNoTranslation   = errors.New("at least one translation is required")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionExpired     = errors.New("session expired or unknown")
)
