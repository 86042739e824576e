package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a request is malformed: a missing descriptor,
	// an empty or undecodable identifier, a bad cursor or a non-positive limit.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned when a shell or submodel does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when creating a record whose id is already taken
	ErrAlreadyExists = errors.New("already exists")
	// ErrStorage is returned when the storage engine itself fails
	ErrStorage = errors.New("storage failure")

	// ErrShellNotFound is returned when a shell does not exist
	ErrShellNotFound = fmt.Errorf("shell %w", ErrNotFound)
	// ErrSubmodelNotFound is returned when a submodel does not exist
	ErrSubmodelNotFound = fmt.Errorf("submodel %w", ErrNotFound)
	// ErrShellAlreadyExists is returned when a shell id is already taken
	ErrShellAlreadyExists = fmt.Errorf("shell %w", ErrAlreadyExists)
	// ErrSubmodelAlreadyExists is returned when a submodel id is already taken
	ErrSubmodelAlreadyExists = fmt.Errorf("submodel %w", ErrAlreadyExists)
)

// Kind classifies an error returned by the registry independently of its message.
type Kind string

const (
	// KindInvalidArgument classifies ErrInvalidArgument
	KindInvalidArgument Kind = "invalid_argument"
	// KindNotFound classifies ErrNotFound
	KindNotFound Kind = "not_found"
	// KindAlreadyExists classifies ErrAlreadyExists
	KindAlreadyExists Kind = "already_exists"
	// KindStorage classifies ErrStorage
	KindStorage Kind = "storage"
	// KindUnknown classifies any other error
	KindUnknown Kind = "unknown"
)

// KindOf returns the kind of err. A nil error has no kind and yields the empty string.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrAlreadyExists):
		return KindAlreadyExists
	case errors.Is(err, ErrStorage):
		return KindStorage
	default:
		return KindUnknown
	}
}

// NewShellNotFoundError reports a missing shell.
func NewShellNotFoundError(id string) error {
	return fmt.Errorf("%w (id: %s)", ErrShellNotFound, id)
}

// NewSubmodelNotFoundError reports a missing standalone submodel.
func NewSubmodelNotFoundError(id string) error {
	return fmt.Errorf("%w (id: %s)", ErrSubmodelNotFound, id)
}

// NewSubmodelNotFoundInShellError reports a submodel missing from an existing shell.
func NewSubmodelNotFoundInShellError(shellID, submodelID string) error {
	return fmt.Errorf("%w in shell (shell: %s, submodel: %s)", ErrSubmodelNotFound, shellID, submodelID)
}

// NewShellAlreadyExistsError reports a duplicate shell id.
func NewShellAlreadyExistsError(id string) error {
	return fmt.Errorf("%w (id: %s)", ErrShellAlreadyExists, id)
}

// NewSubmodelAlreadyExistsError reports a duplicate standalone submodel id.
func NewSubmodelAlreadyExistsError(id string) error {
	return fmt.Errorf("%w (id: %s)", ErrSubmodelAlreadyExists, id)
}

// NewSubmodelAlreadyExistsInShellError reports a duplicate nested submodel id.
func NewSubmodelAlreadyExistsInShellError(shellID, submodelID string) error {
	return fmt.Errorf("%w in shell (shell: %s, submodel: %s)", ErrSubmodelAlreadyExists, shellID, submodelID)
}

// NewInvalidArgumentError wraps a formatted message with ErrInvalidArgument.
func NewInvalidArgumentError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// NewStorageError wraps a storage engine failure so that it is never mistaken for a
// missing record.
func NewStorageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
