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

// Node is a handle to a single element of a List.
// A handle stays valid until the node is removed from or moved within its list.
// After removal Value can still be read and written, but the node is no longer linked.
type Node[T comparable] struct {
	Value T

	// next is the owning (forward) link.
	next *Node[T]
	// prev is only used for backward traversal and unlinking.
	prev *Node[T]
	// owner is the chain the node is linked into, nil when unlinked.
	owner    *chain[T]
	sentinel bool
}

// Next returns the node after n, or nil if n is the last node or not linked.
func (n *Node[T]) Next() *Node[T] {
	if n.owner == nil || n.next.sentinel {
		return nil
	}
	return n.next
}

// Prev returns the node before n, or nil if n is the first node or not linked.
func (n *Node[T]) Prev() *Node[T] {
	if n.owner == nil || n.prev.sentinel {
		return nil
	}
	return n.prev
}

// Linked returns whether n is currently part of a list.
func (n *Node[T]) Linked() bool {
	return n.owner != nil
}

func newSentinel[T comparable]() *Node[T] {
	return &Node[T]{sentinel: true}
}
