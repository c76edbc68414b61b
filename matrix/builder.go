// SPDX-License-Identifier: MIT

package matrix

import "iter"

// FromEntries builds a matrix by Set-ing every entry of seq in order.
// Zero values are skipped; duplicate coordinates follow the configured Set
// policy (first wins by default, last wins under WithOverwrite).
//
// AI-Hints:
//   - m.Entries() feeds straight back in: FromEntries(m.Entries()) is a clone.
func FromEntries[T Number](seq iter.Seq[Entry[T]], opts ...Option) *Sparse[T] {
	out := New[T](opts...)
	for e := range seq {
		out.Set(e.Row, e.Col, e.Value)
	}

	return out
}
