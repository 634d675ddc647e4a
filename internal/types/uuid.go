package types

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex sub_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

const (
	// UUID_PREFIX_SUBSCRIPTION is the prefix for subscription ids
	UUID_PREFIX_SUBSCRIPTION = "subs"
	// UUID_PREFIX_PACKAGE is the prefix for subscription package ids
	UUID_PREFIX_PACKAGE = "pkg"
	// UUID_PREFIX_SIGNUP is the prefix for signup draft ids
	UUID_PREFIX_SIGNUP = "signup"
)
