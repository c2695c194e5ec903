package sparse

import (
	"fmt"

	"github.com/katalvlaran/homred/coeff"
)

// AddRows performs row[r1] += s * row[r2], updating the row view and
// every column it touches so bilateral consistency holds before the
// next caller runs. Returns the maximum
// magnitude produced by the merge. Fails if either row is tombstoned or
// if any intermediate value's magnitude exceeds the configured maximum.
//
// r1 and r2 must differ; the reducer never calls this with r1 == r2.
//
// Complexity: O(len(row r1) + len(row r2)).
func (m *Matrix[T, R]) AddRows(r1, r2 int, s T) (int64, error) {
	v1, err := m.row(r1)
	if err != nil {
		return 0, err
	}
	v2, err := m.row(r2)
	if err != nil {
		return 0, err
	}
	maxMag, err := addVectors(v1, v2, r1, m.cols, s, m.ring, m.opts.maxMagnitude)
	if err != nil {
		return maxMag, fmt.Errorf("AddRows(%d,%d): %w", r1, r2, err)
	}
	return maxMag, nil
}

// AddCols is the column-axis symmetric counterpart of AddRows:
// col[c1] += s * col[c2].
//
// Complexity: O(len(col c1) + len(col c2)).
func (m *Matrix[T, R]) AddCols(c1, c2 int, s T) (int64, error) {
	v1, err := m.col(c1)
	if err != nil {
		return 0, err
	}
	v2, err := m.col(c2)
	if err != nil {
		return 0, err
	}
	maxMag, err := addVectors(v1, v2, c1, m.rows, s, m.ring, m.opts.maxMagnitude)
	if err != nil {
		return maxMag, fmt.Errorf("AddCols(%d,%d): %w", c1, c2, err)
	}
	return maxMag, nil
}

// addVectors implements the ordered-merge algorithm: walk v1 and v2 in
// lockstep by idx, keeping entries only in v1, splicing in
// (scaled) entries only in v2, and summing matched entries (unlinking
// them from v1 if the sum is zero). Every structural change to v1 is
// mirrored into orthogonal[entryIdx-1] at position p1, which is exactly
// the bilateral-consistency obligation: v1 is one of m.rows/m.cols and
// orthogonal is the other.
func addVectors[T any, R coeff.Value[T]](v1, v2 *vector[T], p1 int, orthogonal []*vector[T], s T, ring R, maxMagnitude int64) (int64, error) {
	var maxMag int64
	var prev *entry[T]
	cur := v1.head

	for e2 := v2.head; e2 != nil; e2 = e2.next {
		for cur != nil && cur.idx < e2.idx {
			prev = cur
			cur = cur.next
		}
		switch {
		case cur != nil && cur.idx == e2.idx:
			newVal := ring.Add(cur.val, ring.Mul(s, e2.val))
			mag := ring.Magnitude(newVal)
			if mag > maxMag {
				maxMag = mag
			}
			if mag > maxMagnitude {
				return maxMag, ErrOverflow
			}
			orthoIdx := e2.idx
			if ring.IsZero(newVal) {
				if prev == nil {
					v1.head = cur.next
				} else {
					prev.next = cur.next
				}
				v1.count--
				orthogonal[orthoIdx-1].remove(p1)
				cur = cur.next
				// prev is unchanged: it still precedes whatever comes next.
			} else {
				cur.val = newVal
				orthogonal[orthoIdx-1].upsert(p1, newVal)
				prev = cur
				cur = cur.next
			}
		default:
			newVal := ring.Mul(s, e2.val)
			if ring.IsZero(newVal) {
				continue
			}
			mag := ring.Magnitude(newVal)
			if mag > maxMag {
				maxMag = mag
			}
			if mag > maxMagnitude {
				return maxMag, ErrOverflow
			}
			node := &entry[T]{idx: e2.idx, val: newVal, next: cur}
			if prev == nil {
				v1.head = node
			} else {
				prev.next = node
			}
			v1.count++
			prev = node
			orthogonal[e2.idx-1].upsert(p1, newVal)
		}
	}
	return maxMag, nil
}
