// Package api handles parsing and normalisation of API references as they appear
// in the BIKER and APIBENCH-Q benchmarks, e.g. "java.lang.String.format".
package api

import (
	"strings"
)

// Separator delimits the segments of an API reference.
const Separator = "."

// Reference is a structured API reference. The Qualifier is the package and
// type portion of the reference, and Member is the final segment (usually a
// method or field name). A reference with no separator has an empty Qualifier.
type Reference struct {
	Qualifier string
	Member    string
}

// Parse creates a reference from its string form. Surrounding whitespace and
// any trailing argument list (e.g. "format(String, Object...)") are removed.
func Parse(s string) Reference {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "("); i >= 0 {
		s = s[:i]
	}
	if j := strings.LastIndex(s, Separator); j >= 0 {
		return Reference{
			Qualifier: s[:j],
			Member:    s[j+1:],
		}
	}
	return Reference{Member: s}
}

// ParseList parses a comma-separated list of references. Commas inside a
// parenthesised argument list do not split the reference. Empty entries are
// dropped.
func ParseList(s string) []Reference {
	var refs []Reference
	var depth, start int
	for i := 0; i <= len(s); i++ {
		if i < len(s) {
			switch s[i] {
			case '(':
				depth++
				continue
			case ')':
				if depth > 0 {
					depth--
				}
				continue
			}
			if s[i] != ',' || depth > 0 {
				continue
			}
		}
		part := strings.TrimSpace(s[start:i])
		if len(part) > 0 {
			refs = append(refs, Parse(part))
		}
		start = i + 1
	}
	return refs
}

// String renders the normalised form of the reference.
func (r Reference) String() string {
	if len(r.Qualifier) == 0 {
		return r.Member
	}
	return r.Qualifier + Separator + r.Member
}

// Standard reports whether the reference points into the Java standard
// library proper.
func (r Reference) Standard() bool {
	s := r.String()
	return strings.HasPrefix(s, "java"+Separator) || strings.HasPrefix(s, "javax"+Separator)
}

// Truncate returns the reference truncated at the final separator. When the
// reference has no separator the whole reference is returned rather than an
// empty string.
func (r Reference) Truncate() string {
	if len(r.Qualifier) == 0 {
		return r.Member
	}
	return r.Qualifier
}

// Strings renders a list of references to their normalised string forms.
func Strings(refs []Reference) []string {
	s := make([]string, len(refs))
	for i, ref := range refs {
		s[i] = ref.String()
	}
	return s
}

// Join renders a list of references as the comma-separated form used by the
// answer column of the benchmark datasets.
func Join(refs []Reference) string {
	return strings.Join(Strings(refs), ",")
}
