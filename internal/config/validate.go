package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyMatrixPath indicates a missing matrix file path
	ErrEmptyMatrixPath = errors.New("empty matrix path")

	// ErrNoAPIs indicates an empty API include list
	ErrNoAPIs = errors.New("no APIs configured")

	// ErrUnknownPrimary indicates a primary API not present in the include list
	ErrUnknownPrimary = errors.New("unknown primary API")

	// ErrEmptyReference indicates a missing reference implementation name
	ErrEmptyReference = errors.New("empty reference name")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if strings.TrimSpace(cfg.Matrix) == "" {
		errs = append(errs, fmt.Errorf("%w: matrix is required", ErrEmptyMatrixPath))
	}

	if len(cfg.Board.APIs) == 0 {
		errs = append(errs, fmt.Errorf("%w: board.apis must list at least one API", ErrNoAPIs))
	}

	included := make(map[string]bool, len(cfg.Board.APIs))
	for _, api := range cfg.Board.APIs {
		included[api] = true
	}
	for _, p := range cfg.Board.Primary {
		if !included[p] {
			errs = append(errs, fmt.Errorf("%w: %q is not in board.apis", ErrUnknownPrimary, p))
		}
	}

	if strings.TrimSpace(cfg.Board.Reference) == "" {
		errs = append(errs, fmt.Errorf("%w: board.reference is required", ErrEmptyReference))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
