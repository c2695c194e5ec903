package coeff

// IntRing is the ordinary ring of signed integers. Its stored type is
// int64; Magnitude is absolute value, and the only units are ±1.
//
// Complexity: every method is O(1).
type IntRing struct{}

var _ Value[int64] = IntRing{}

// Zero returns 0.
func (IntRing) Zero() int64 { return 0 }

// IsZero reports whether v == 0.
func (IntRing) IsZero(v int64) bool { return v == 0 }

// Equal reports whether a == b.
func (IntRing) Equal(a, b int64) bool { return a == b }

// Add returns a + b.
func (IntRing) Add(a, b int64) int64 { return a + b }

// Mul returns a * b.
func (IntRing) Mul(a, b int64) int64 { return a * b }

// Neg returns -v.
func (IntRing) Neg(v int64) int64 { return -v }

// Magnitude returns |v|.
func (IntRing) Magnitude(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
