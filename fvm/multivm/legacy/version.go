package legacy

import (
	"fmt"
	"strings"
)

// Version identifies the historical VM implementation that produced a raw
// result, oldest first.
type Version uint8

const (
	// VersionM5 is the oldest supported VM (V1). It reports no computational
	// gas and knows no invocation limit.
	VersionM5 Version = iota + 1
	// VersionM6 is the second VM (V2).
	VersionM6
	// Version1_3_2 is the last VM with bootloader memory in its public API (V3).
	Version1_3_2
)

var versionNames = map[Version]string{
	VersionM5:    "vm_m5",
	VersionM6:    "vm_m6",
	Version1_3_2: "vm_1_3_2",
}

// AllVersions returns every historical version, oldest first.
func AllVersions() []Version {
	return []Version{VersionM5, VersionM6, Version1_3_2}
}

func (v Version) String() string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return fmt.Sprintf("vm_unknown(%d)", uint8(v))
}

// ParseVersion parses a version name as printed by String. The short labels
// v1, v2 and v3 are accepted as well.
func ParseVersion(s string) (Version, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "v1":
		return VersionM5, nil
	case "v2":
		return VersionM6, nil
	case "v3":
		return Version1_3_2, nil
	}
	for v, name := range versionNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown vm version %q", s)
}
