package errs

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrBookNotFound      = errors.New("book not found")
	ErrMemberNotFound    = errors.New("member not found")
	ErrBorrowingNotFound = errors.New("borrowing not found")
	ErrOutOfStock        = errors.New("book out of stock")
	ErrAlreadyReturned   = errors.New("already returned")
	ErrBookBorrowed      = errors.New("book is currently borrowed")
	ErrOpenBorrowings    = errors.New("member has active borrowings")
	ErrEmptyUpdate       = errors.New("no fields to update")
)
