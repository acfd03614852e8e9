package verbosity

import (
	"fmt"
	"strings"
)

type Verbosity int // Verbosity controls the closeness/quantity of returned spelling suggestions

const (
	Top     Verbosity = iota // Top suggestion with the highest term frequency of the suggestions of smallest edit distance found
	Closest                  // Closest suggestions with the smallest edit distance found, ordered by frequency
	All                      // All suggestions within maxEditDistance, suggestions ordered by edit distance then by frequency (slower, no early termination)
)

var names = [...]string{"top", "closest", "all"}

func (v Verbosity) String() string {
	if v < Top || v > All {
		return fmt.Sprintf("verbosity(%d)", int(v))
	}
	return names[v]
}

// Parse converts a case-insensitive name ("top", "closest", "all") to a Verbosity.
func Parse(name string) (Verbosity, error) {
	for i, n := range names {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Verbosity(i), nil
		}
	}
	return Top, fmt.Errorf("unknown verbosity %q", name)
}

func (v Verbosity) MarshalText() ([]byte, error) {
	if v < Top || v > All {
		return nil, fmt.Errorf("unknown verbosity %d", int(v))
	}
	return []byte(names[v]), nil
}

func (v *Verbosity) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
