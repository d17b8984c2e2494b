package ui

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/quantmind-br/create-example/internal/config"
	"github.com/quantmind-br/create-example/internal/pkgmgr"
	"github.com/quantmind-br/create-example/internal/utils"
)

// Validation error messages
var (
	ErrRequired      = errors.New("this field is required")
	ErrInvalidNumber = errors.New("must be a valid number")
	ErrNegative      = errors.New("must not be negative")
)

// ValidateRequired ensures a string value is not empty
func ValidateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrRequired
	}
	return nil
}

// ValidateDuration validates that a string can be parsed as a time.Duration
func ValidateDuration(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil // Empty is valid (will use default)
	}
	_, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration format (use: 30s, 5m, 1h): %w", err)
	}
	return nil
}

// ValidateNonNegativeInt validates that a string represents an integer >= 0
func ValidateNonNegativeInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return ErrInvalidNumber
	}
	if n < 0 {
		return ErrNegative
	}
	return nil
}

// ValidateHost accepts a bare host name such as github.com
func ValidateHost(s string) error {
	if err := ValidateRequired(s); err != nil {
		return err
	}
	if strings.ContainsAny(s, "/: ") {
		return fmt.Errorf("expected a bare host name like github.com")
	}
	return nil
}

// ValidateSegment accepts a single path segment such as an organization name
func ValidateSegment(s string) error {
	if err := ValidateRequired(s); err != nil {
		return err
	}
	if !utils.IsValidFilename(s) {
		return fmt.Errorf("%q is not a valid name", s)
	}
	return nil
}

// ValidatePackageManager accepts the package managers the installer knows
func ValidatePackageManager(s string) error {
	for _, k := range pkgmgr.Known {
		if s == k {
			return nil
		}
	}
	return fmt.Errorf("invalid package manager: must be one of %s", strings.Join(pkgmgr.Known, ", "))
}

// ValidateGitBackend validates the VCS backend name
func ValidateGitBackend(s string) error {
	switch s {
	case config.BackendCLI, config.BackendGoGit:
		return nil
	}
	return fmt.Errorf("invalid git backend: must be %s or %s", config.BackendCLI, config.BackendGoGit)
}

// ValidateEmail validates the commit author email
func ValidateEmail(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidateLogLevel validates log level values
func ValidateLogLevel(s string) error {
	validLevels := map[string]bool{
		"debug":    true,
		"info":     true,
		"warn":     true,
		"error":    true,
		"disabled": true,
	}
	if !validLevels[strings.ToLower(s)] {
		return fmt.Errorf("invalid log level: must be one of debug, info, warn, error, disabled")
	}
	return nil
}

// ValidateLogFormat validates log format values
func ValidateLogFormat(s string) error {
	validFormats := map[string]bool{
		"json":   true,
		"pretty": true,
	}
	if !validFormats[strings.ToLower(s)] {
		return fmt.Errorf("invalid log format: must be json or pretty")
	}
	return nil
}
