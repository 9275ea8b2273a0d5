package legacy

import (
	"github.com/rollup-vm/multivm/fvm/errors"
)

// Decode decodes the raw result of the given version. unmarshal is handed a
// pointer to the concrete shape of the version and must fill it, so any codec
// can be used. The result is returned in value form.
func Decode(version Version, unmarshal func(v interface{}) error) (BlockResult, error) {
	switch version {
	case VersionM5:
		var raw V1BlockResult
		if err := unmarshal(&raw); err != nil {
			return nil, err
		}
		return raw, nil
	case VersionM6:
		var raw V2BlockResult
		if err := unmarshal(&raw); err != nil {
			return nil, err
		}
		return raw, nil
	case Version1_3_2:
		var raw V3BlockResult
		if err := unmarshal(&raw); err != nil {
			return nil, err
		}
		return raw, nil
	default:
		return nil, errors.NewUnsupportedVersionFailure(version)
	}
}
