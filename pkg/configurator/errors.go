package configurator

import "errors"

var (
	// ErrConfiguration is returned by Initialize when the groups or defaults
	// are inconsistent.
	ErrConfiguration = errors.New("configurator: invalid configuration")

	// ErrUnknownGroup is returned when a group name was not part of Initialize.
	ErrUnknownGroup = errors.New("configurator: unknown group")

	// ErrUnknownOption is returned when an option id is not in its group.
	ErrUnknownOption = errors.New("configurator: unknown option")

	// ErrNotInitialized is returned by every operation except Initialize until
	// Initialize has succeeded once.
	ErrNotInitialized = errors.New("configurator: not initialized")
)
