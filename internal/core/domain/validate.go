package domain

import (
	"strings"
	"unicode/utf8"
)

// maxStringLen bounds any string value accepted in a candidate mapping.
const maxStringLen = 1000

// IsValidUserData reports whether an untyped candidate mapping is well-formed
// enough to be treated as user data. It is a pure decision function: it never
// panics and never errors — wrong value types fold into a false verdict.
//
// Rules, in evaluation order:
//   - the mapping must be non-empty
//   - "name" must be a string of at least 2 characters
//   - "email" must be a string containing "@"
//   - "role", when present, must be one of admin/user/guest
//   - role "admin" additionally requires an "admin_key" entry
//   - no entry anywhere in the mapping may be nil
//   - no string value anywhere may exceed 1000 characters
func IsValidUserData(data map[string]any) bool {
	if len(data) == 0 {
		return false
	}

	name, ok := data["name"].(string)
	if !ok || utf8.RuneCountInString(name) < 2 {
		return false
	}

	email, ok := data["email"].(string)
	if !ok || !strings.Contains(email, "@") {
		return false
	}

	if raw, present := data["role"]; present {
		role, ok := raw.(string)
		if !ok || !UserRole(role).IsValid() {
			return false
		}
		if UserRole(role) == RoleAdmin {
			if _, hasKey := data["admin_key"]; !hasKey {
				return false
			}
		}
	}

	// Per-entry scan runs over every key, declared schema or not: a nil value
	// or an overlong string anywhere rejects the whole candidate.
	for _, v := range data {
		if v == nil {
			return false
		}
		if s, isString := v.(string); isString && utf8.RuneCountInString(s) > maxStringLen {
			return false
		}
	}

	return true
}
