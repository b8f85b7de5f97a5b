package cmdutil

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar"

	"github.com/fossas/vcsfetch/errors"
)

// Select resolves library arguments against the installed libraries. Plain
// names are kept as given; glob patterns such as `lib-*` expand to every
// installed library they match. The result has no duplicates.
func Select(installed, args []string) ([]string, error) {
	var selected []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			selected = append(selected, name)
		}
	}

	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			add(arg)
			continue
		}
		matched := false
		for _, name := range installed {
			ok, err := doublestar.Match(arg, name)
			if err != nil {
				return nil, &errors.Error{
					Cause:   err,
					Type:    errors.User,
					Message: fmt.Sprintf("invalid pattern %q", arg),
				}
			}
			if ok {
				matched = true
				add(name)
			}
		}
		if !matched {
			return nil, &errors.Error{
				Type:            errors.User,
				Message:         fmt.Sprintf("no installed library matches %q", arg),
				Troubleshooting: "Run `vcsfetch status` to list the installed libraries.",
			}
		}
	}
	return selected, nil
}
