/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package dlist

import (
	"fmt"
	"io"
	"strings"
)

var _ fmt.Stringer = (*List[int])(nil)
var _ io.WriterTo = (*List[int])(nil)

// String renders the list as "List(" followed by the space-separated values and ")".
func (l *List[T]) String() string {
	b := strings.Builder{}
	b.WriteString("List(")
	c := l.lazyInit()
	for n := c.head.next; n != c.tail; n = n.next {
		if n != c.head.next {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprint(n.Value))
	}
	b.WriteString(")")
	return b.String()
}

// WriteTo writes the rendering of String to w, followed by a newline.
func (l *List[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, l.String()+"\n")
	return int64(n), err
}
