package main

import "errors"

var (
	// ErrNoTarget occurs when neither a file nor a directory was given.
	ErrNoTarget = errors.New("no file or directory path specified")

	// ErrConflictingTargets occurs when both a file and a directory were
	// given, which are mutually exclusive modes of operation.
	ErrConflictingTargets = errors.New("both file and directory paths cannot be specified together")
)
