package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/indaco/tagfind/internal/logging"
)

// Validate checks the fields that discovery relies on.
// All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if err := ValidateName("manifest", c.Manifest); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateName("components-dir", c.ComponentsDir); err != nil {
		errs = append(errs, err)
	}
	if !logging.IsValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("log-level %q must be one of: %s",
			c.LogLevel, strings.Join(logging.ValidLevels, ", ")))
	}
	for i, d := range c.ExcludeDirs {
		if strings.TrimSpace(d) == "" {
			errs = append(errs, fmt.Errorf("exclude-dirs[%d] is empty", i))
		}
	}
	for i, p := range c.ExcludePackages {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Errorf("exclude-packages[%d] is empty", i))
		}
	}

	return errors.Join(errs...)
}

// ValidateName rejects values that are not a single path element.
func ValidateName(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if strings.ContainsAny(value, `/\`) || value == "." || value == ".." {
		return fmt.Errorf("%s %q must be a plain file or directory name", field, value)
	}
	return nil
}
