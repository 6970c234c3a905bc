package rules

import (
	"errors"
	"fmt"
)

// ErrUnknownConfiguration is returned when a rule's configuration
// payload contains an unrecognized key, a value of the wrong type, or
// is not a usable mapping at all. Configuration is all-or-nothing:
// callers match with errors.Is and abort the whole lint setup.
var ErrUnknownConfiguration = errors.New("unknown configuration")

func unknownConfiguration(ruleID, format string, args ...any) error {
	return fmt.Errorf("%w for rule %q: %s", ErrUnknownConfiguration, ruleID, fmt.Sprintf(format, args...))
}
