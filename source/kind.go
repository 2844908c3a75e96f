package source

import "fmt"

// Kind classifies a stream variant as reported by the backend.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPrimary
	KindFallback
)

const (
	primary  = "primary"
	fallback = "fallback"
	unknown  = "unknown"
)

func (k Kind) String() string {
	switch k {
	case KindPrimary:
		return primary
	case KindFallback:
		return fallback
	default:
		return unknown
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name, rejecting anything but the three known names.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case primary:
		*k = KindPrimary
	case fallback:
		*k = KindFallback
	case unknown, "":
		*k = KindUnknown
	default:
		return fmt.Errorf("invalid stream kind %q", text)
	}
	return nil
}

// KindOf resolves the kind from the type fields of a raw record.
// Comparison is case-sensitive; primary wins over fallback.
func KindOf(values ...string) Kind {
	for _, v := range values {
		if v == primary {
			return KindPrimary
		}
	}
	for _, v := range values {
		if v == fallback {
			return KindFallback
		}
	}
	return KindUnknown
}
