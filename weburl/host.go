package weburl

import "strings"

// Host is a hostname like "example.com", split into a required leading name
// and the ordered domains it lives under.
type Host struct {
	// Name is the required leftmost label, like "vm" in "vm.example.com".
	Name Label
	// Domains are the labels after the name, like "example" and "com" in
	// "vm.example.com", in original order.
	Domains []Label
}

// hostDelimiters end the hostname region during parsing.
const hostDelimiters = "/:"

// NewHost builds a Host from already-validated labels.
func NewHost(name Label, domains ...Label) Host {
	return Host{Name: name, Domains: domains}
}

// ParseHost parses the leading hostname of input and returns it together
// with the unconsumed remainder, which starts at the first '/' or ':'. The
// hostname text is split on '.' and every segment must be a valid Label;
// the first Label failure aborts the parse and is wrapped so errors.Is
// still matches the Label error kind.
func ParseHost(input string) (Host, string, error) {
	text, rest := input, ""
	if idx := strings.IndexAny(input, hostDelimiters); idx >= 0 {
		text, rest = input[:idx], input[idx:]
	}

	segments := strings.Split(text, ".")
	if len(segments) == 0 {
		return Host{}, "", ErrNoLabels
	}

	labels := make([]Label, 0, len(segments))
	offset := 0
	for _, segment := range segments {
		label, err := NewLabel(segment)
		if err != nil {
			return Host{}, "", wrapParseError("host", input, offset, err)
		}
		labels = append(labels, label)
		offset += len(segment) + 1
	}
	return Host{Name: labels[0], Domains: labels[1:]}, rest, nil
}

// String formats the hostname by joining the name and domains with '.',
// with no trailing separator.
func (h Host) String() string {
	var buf strings.Builder
	buf.WriteString(h.Name.value)
	for _, domain := range h.Domains {
		buf.WriteByte('.')
		buf.WriteString(domain.value)
	}
	return buf.String()
}

// Equal reports whether two hosts hold the same labels.
func (h Host) Equal(other Host) bool {
	if h.Name != other.Name || len(h.Domains) != len(other.Domains) {
		return false
	}
	for i := range h.Domains {
		if h.Domains[i] != other.Domains[i] {
			return false
		}
	}
	return true
}
