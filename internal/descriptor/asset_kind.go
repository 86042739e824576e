package descriptor

import (
	"fmt"
	"strings"
)

// AssetKind denotes whether a shell describes an asset type or an asset instance.
type AssetKind string

const (
	// AssetKindInstance marks a concrete asset
	AssetKindInstance AssetKind = "Instance"
	// AssetKindType marks an asset type
	AssetKindType AssetKind = "Type"
	// AssetKindNotApplicable marks shells for which the distinction does not apply
	AssetKindNotApplicable AssetKind = "NotApplicable"
)

// AssetKinds lists every valid asset kind.
var AssetKinds = []AssetKind{AssetKindInstance, AssetKindType, AssetKindNotApplicable}

// ParseAssetKind converts a textual asset kind into an AssetKind.
// Matching ignores case and surrounding whitespace, so "instance" and "NOTAPPLICABLE"
// are both accepted.
func ParseAssetKind(s string) (AssetKind, error) {
	trimmed := strings.TrimSpace(s)
	for _, k := range AssetKinds {
		if strings.EqualFold(trimmed, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid asset kind: %q", s)
}

// IsValid reports whether k is one of the defined asset kinds. The empty kind is not valid.
func (k AssetKind) IsValid() bool {
	for _, known := range AssetKinds {
		if k == known {
			return true
		}
	}
	return false
}

// String returns the canonical spelling of the asset kind.
func (k AssetKind) String() string {
	return string(k)
}
