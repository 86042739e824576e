package service

import (
	"strings"
	"unicode/utf8"

	"github.com/stacklok/descriptor-registry-server/internal/descriptor"
)

// EnsureIdentifier checks that id can serve as a key. It rejects empty and blank ids,
// ids containing NUL bytes and ids that are not valid UTF-8, none of which survive a
// round trip through every storage backend. The kind names the record for the message.
func EnsureIdentifier(kind, id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return NewInvalidArgumentError("%s id must not be empty", kind)
	case !utf8.ValidString(id):
		return NewInvalidArgumentError("%s id must be valid UTF-8", kind)
	case strings.ContainsRune(id, 0):
		return NewInvalidArgumentError("%s id must not contain NUL characters", kind)
	}
	return nil
}

// EnsureShell checks a shell descriptor before it is written. Besides the shell id it
// validates the asset kind and every nested submodel id, and rejects duplicates within
// the nested list and NUL characters anywhere in the descriptor.
func EnsureShell(shell *descriptor.Shell) error {
	if shell == nil {
		return NewInvalidArgumentError("shell descriptor is required")
	}
	if err := EnsureIdentifier("shell", shell.ID); err != nil {
		return err
	}
	if shell.AssetKind != "" && !shell.AssetKind.IsValid() {
		return NewInvalidArgumentError("invalid asset kind %q (supported: %s, %s, %s)", string(shell.AssetKind),
			descriptor.AssetKindInstance, descriptor.AssetKindType, descriptor.AssetKindNotApplicable)
	}
	seen := make(map[string]struct{}, len(shell.SubmodelDescriptors))
	for i := range shell.SubmodelDescriptors {
		id := shell.SubmodelDescriptors[i].ID
		if err := EnsureIdentifier("submodel", id); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			return NewSubmodelAlreadyExistsInShellError(shell.ID, id)
		}
		seen[id] = struct{}{}
	}
	if descriptor.ContainsNUL(shell) {
		return NewInvalidArgumentError("shell descriptor must not contain NUL characters (id: %s)", shell.ID)
	}
	return nil
}

// EnsureSubmodel checks a submodel descriptor before it is written.
func EnsureSubmodel(submodel *descriptor.Submodel) error {
	if submodel == nil {
		return NewInvalidArgumentError("submodel descriptor is required")
	}
	if err := EnsureIdentifier("submodel", submodel.ID); err != nil {
		return err
	}
	if descriptor.ContainsNUL(submodel) {
		return NewInvalidArgumentError("submodel descriptor must not contain NUL characters (id: %s)", submodel.ID)
	}
	return nil
}
