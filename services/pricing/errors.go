package pricing

import (
	"fmt"
	"strings"
)

// MissingParameterError is fatal to a single calculation: one or more
// required inputs were absent. Fields always lists every missing input,
// not just the first one found.
type MissingParameterError struct {
	Fields []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missingParameter: required inputs absent: %s", strings.Join(e.Fields, ", "))
}

// ConfigurationError flags a data-quality problem in stored configuration,
// such as a rate plan without a pricing_type. Non-fatal to a batch: the
// affected cell is priced without the broken piece and the error is surfaced
// to the caller.
type ConfigurationError struct {
	Code    string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConfigurationError(format string, args ...any) error {
	return &ConfigurationError{
		Code:    "configError",
		Message: fmt.Sprintf(format, args...),
	}
}
