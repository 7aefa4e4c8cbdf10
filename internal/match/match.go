// Package match implements the key-glob dialect shared by the built-in
// region adapters: `*`, `?`, escapes and character classes per path.Match.
// As with path.Match, `*` does not cross a '/' in the key.
package match

import "path"

// Pattern is a validated key-glob.
type Pattern struct {
	raw string
}

// Compile validates p up front so matching is a pure predicate afterwards.
// Malformed patterns surface path.ErrBadPattern.
func Compile(p string) (Pattern, error) {
	if err := validate(p); err != nil {
		return Pattern{}, err
	}
	return Pattern{raw: p}, nil
}

// validate rejects the structural errors path.Match only reports lazily:
// trailing escapes and unclosed character classes. path.Match stops scanning
// as soon as the candidate is exhausted, so Compile cannot rely on a single
// probe match for validation.
func validate(p string) error {
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '\\':
			i++
			if i >= len(p) {
				return path.ErrBadPattern
			}
		case '[':
			i++
			if i < len(p) && p[i] == '^' {
				i++
			}
			start := i
			for ; i < len(p) && (p[i] != ']' || i == start); i++ {
				if p[i] == '\\' {
					i++
				}
			}
			if i >= len(p) {
				return path.ErrBadPattern
			}
		}
	}
	return nil
}

// Match reports whether key matches the pattern.
func (p Pattern) Match(key string) bool {
	ok, _ := path.Match(p.raw, key)
	return ok
}

func (p Pattern) String() string { return p.raw }
