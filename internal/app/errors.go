package service

import "errors"

// Sentinel errors returned by the batch service.
var (
	ErrBatchHalted      = errors.New("batch halted")
	ErrDuplicatePackage = errors.New("duplicate package")
	ErrUnknownPolicy    = errors.New("unknown error policy")
)
