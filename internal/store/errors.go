package store

import "errors"

var (
	ErrDuplicateCurrency  = errors.New("wallet for currency already exists")
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrCardNotFound       = errors.New("card not found")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrTransactionMissing = errors.New("transaction not found")
)
