package secret

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// ExpandEnvStrict expands $VAR and ${VAR} references in s from the
// environment. Unlike os.ExpandEnv, a reference to an unset variable
// is an error naming every missing variable rather than a silent empty
// string. "$$" escapes to a literal "$".
func ExpandEnvStrict(s string) (string, error) {
	missing := map[string]bool{}

	expanded := os.Expand(s, func(name string) string {
		if name == "$" {
			return "$"
		}
		value, ok := os.LookupEnv(name)
		if !ok {
			missing[name] = true
			return ""
		}
		return value
	})

	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", fmt.Errorf("secret: missing environment variables: %s", strings.Join(names, ", "))
	}

	return expanded, nil
}
