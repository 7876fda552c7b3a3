package validator

import (
	"strconv"

	"github.com/google/uuid"
)

const CodeInvalidUUID = "INVALID_UUID"

var uuidMessages = Messages{
	CodeInvalidUUID: "%key%: %value% is not a valid UUID",
}

// UUIDRule checks that the value is a canonical UUID (36 characters with
// hyphens), optionally of the given "version". The nil UUID is rejected.
type UUIDRule struct {
	Base
	version int
}

// NewUUIDRule builds a UUID rule. A version of 0 accepts any version.
func NewUUIDRule(key, value any, params Params) Rule {
	return &UUIDRule{
		Base:    NewBase(key, value, params, uuidMessages),
		version: params.Int(ParamVersion, 0),
	}
}

func (r *UUIDRule) Validate() Outcome {
	return r.Run(func() Outcome {
		placeholders := map[string]string{"version": strconv.Itoa(r.version)}
		var id uuid.UUID
		switch v := r.Value().(type) {
		case uuid.UUID:
			id = v
		case string:
			// Fast rejection: check length and hyphen positions before parsing
			if len(v) != 36 || v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
				return r.Fail(CodeInvalidUUID, placeholders)
			}
			parsed, err := uuid.Parse(v)
			if err != nil {
				return r.Fail(CodeInvalidUUID, placeholders)
			}
			id = parsed
		default:
			return r.Fail(CodeInvalidUUID, placeholders)
		}
		if id == uuid.Nil {
			return r.Fail(CodeInvalidUUID, placeholders)
		}
		if r.version > 0 && int(id.Version()) != r.version {
			return r.Fail(CodeInvalidUUID, placeholders)
		}
		return Valid
	})
}
