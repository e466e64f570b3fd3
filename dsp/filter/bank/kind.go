package bank

import "strings"

// Kind names a filter family.
type Kind int

const (
	// KindUnknown marks a name that matched no kind. It resolves to
	// DefaultKind wherever a filter is built.
	KindUnknown Kind = -1

	KindMovingAverage Kind = iota - 1
	KindButterworth
	KindChebyshev1
	KindBessel
	KindElliptic
)

// DefaultKind is used when a requested kind is not recognized.
const DefaultKind = KindButterworth

var kindNames = [...]string{
	KindMovingAverage: "moving-average",
	KindButterworth:   "butterworth",
	KindChebyshev1:    "chebyshev",
	KindBessel:        "bessel",
	KindElliptic:      "elliptic",
}

var kindAliases = map[string]Kind{
	"moving-average": KindMovingAverage,
	"moving_average": KindMovingAverage,
	"movingaverage":  KindMovingAverage,
	"ma":             KindMovingAverage,
	"butterworth":    KindButterworth,
	"butter":         KindButterworth,
	"chebyshev":      KindChebyshev1,
	"chebyshev1":     KindChebyshev1,
	"chebyshev-i":    KindChebyshev1,
	"cheby1":         KindChebyshev1,
	"bessel":         KindBessel,
	"elliptic":       KindElliptic,
	"ellip":          KindElliptic,
}

// Valid reports whether k is one of Kinds.
func (k Kind) Valid() bool {
	return k >= KindMovingAverage && int(k) < len(kindNames)
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode to
// KindUnknown so the fallback stays visible to whoever applies the filter.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, fellBack := ParseKind(string(text))
	if fellBack {
		kind = KindUnknown
	}
	*k = kind
	return nil
}

// Resolve returns k, or DefaultKind with fellBack set when k is not valid.
func (k Kind) Resolve() (kind Kind, fellBack bool) {
	if k.Valid() {
		return k, false
	}
	return DefaultKind, true
}

// ParseKind maps a filter name to its Kind. Matching ignores case and
// surrounding space. Unknown names resolve to DefaultKind with fellBack set,
// so callers can report the substitution.
func ParseKind(name string) (kind Kind, fellBack bool) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, false
	}
	return DefaultKind, true
}

// Kinds lists every filter kind in display order.
func Kinds() []Kind {
	return []Kind{KindMovingAverage, KindButterworth, KindChebyshev1, KindBessel, KindElliptic}
}
