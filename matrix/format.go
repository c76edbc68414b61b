// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowBreak = "\n"
	_fmtRowMark  = ":"
	_fmtCellSep  = "->"
)

// String renders m for debugging. Each non-empty row prints as
//
//	<row>:(<col>, <value>)->(<col>, <value>)...
//
// on its own line, rows ascending, columns ascending. The output starts and
// ends with a newline; an empty matrix renders as "\n". Not parseable.
func (m *Sparse[T]) String() string {
	var sb strings.Builder
	prevRow := -1
	for e := range m.Entries() {
		if e.Row != prevRow {
			fmt.Fprintf(&sb, "%s%d%s", _fmtRowBreak, e.Row, _fmtRowMark)
			prevRow = e.Row
		} else {
			sb.WriteString(_fmtCellSep)
		}
		fmt.Fprintf(&sb, "(%d, %v)", e.Col, e.Value)
	}
	sb.WriteString(_fmtRowBreak)

	return sb.String()
}
