package db

import "errors"

// Domain-level database error sentinels.
var (
	// Keyword errors
	ErrKeywordNotFound  = errors.New("keyword not found")
	ErrDuplicateKeyword = errors.New("keyword already exists")

	// Page errors
	ErrPageNotFound = errors.New("page not found")

	// User errors
	ErrUserNotFound = errors.New("user not found")
)
