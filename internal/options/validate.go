// Package options validates mutually exclusive inputs.
package options

import (
	"fmt"
	"strings"
)

// Source names one candidate input and whether it was supplied.
type Source struct {
	Name string
	Set  bool
}

// ExactlyOne returns an error naming every candidate unless exactly one
// source is set.
func ExactlyOne(sources ...Source) error {
	set := 0
	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.Name)
		if s.Set {
			set++
		}
	}
	if set == 1 {
		return nil
	}
	return fmt.Errorf("exactly one of %s must be provided", joinNames(names))
}

// joinNames renders names as "a", "a or b" or "a, b or c".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
