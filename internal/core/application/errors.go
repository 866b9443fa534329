package application

import "errors"

var (
	// ErrIncorrectAuthority is thrown when the caller of a gated operation
	// does not match the configured identity.
	ErrIncorrectAuthority = errors.New("incorrect authority")
	// ErrMarketNotFound ...
	ErrMarketNotFound = errors.New("market not found")
	// ErrMarketAlreadyExists ...
	ErrMarketAlreadyExists = errors.New("market already exists")
	// ErrNothingToClaim is thrown when the creator vault holds no more than
	// its rent reserve.
	ErrNothingToClaim = errors.New("creator vault balance is below the reserve floor")
	// ErrInvalidNewAuthority ...
	ErrInvalidNewAuthority = errors.New("new authority must not be empty")
	// ErrInvalidTrader ...
	ErrInvalidTrader = errors.New("trader identity must not be empty")
)
