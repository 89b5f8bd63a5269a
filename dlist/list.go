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

// Package dlist provides a generic doubly linked list bounded by two sentinel nodes.
// It is not safe for concurrent use.
package dlist

import "errors"

// ErrEmptyList is returned when the first or last node of an empty list is requested.
var ErrEmptyList = errors.New("list is empty")

// chain holds the sentinels and the number of data nodes between them.
// Nodes point to the chain they're linked into, so a List can hand its chain to another List in O(1).
type chain[T comparable] struct {
	head *Node[T]
	tail *Node[T]
	len  int
}

func newChain[T comparable]() *chain[T] {
	c := &chain[T]{
		head: newSentinel[T](),
		tail: newSentinel[T](),
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// insertAfter links n directly after at.
func (c *chain[T]) insertAfter(n, at *Node[T]) *Node[T] {
	n.prev = at
	n.next = at.next
	at.next.prev = n
	at.next = n
	n.owner = c
	c.len++
	return n
}

// unlink splices n out of the chain and clears its links, so it keeps no reference into the chain.
func (c *chain[T]) unlink(n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	n.owner = nil
	c.len--
}

// List is a doubly linked list of comparable values.
// The zero value is an empty list ready to use.
type List[T comparable] struct {
	c *chain[T]
}

// New returns a list containing the given values in order.
func New[T comparable](values ...T) *List[T] {
	l := new(List[T])
	l.PushBackAll(values...)
	return l
}

// Take returns a new list holding the contents of src, leaving src empty.
func Take[T comparable](src *List[T]) *List[T] {
	l := new(List[T])
	l.MoveFrom(src)
	return l
}

func (l *List[T]) lazyInit() *chain[T] {
	if l.c == nil {
		l.c = newChain[T]()
	}
	return l.c
}

// Clone returns a deep copy of l: a new list with equal values in the same order, sharing no nodes with l.
func (l *List[T]) Clone() *List[T] {
	result := new(List[T])
	c := l.lazyInit()
	for n := c.head.next; n != c.tail; n = n.next {
		result.PushBack(n.Value)
	}
	return result
}

// Swap exchanges the contents of l and other.
func (l *List[T]) Swap(other *List[T]) {
	l.lazyInit()
	other.lazyInit()
	l.c, other.c = other.c, l.c
}

// Assign replaces the contents of l with a copy of src.
// The copy is built first and then swapped in.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	tmp := src.Clone()
	l.Swap(tmp)
	tmp.Clear()
}

// MoveFrom replaces the contents of l with those of src, leaving src empty.
// Nodes of src keep their identity and are now linked into l.
func (l *List[T]) MoveFrom(src *List[T]) {
	if l == src {
		return
	}
	l.Swap(src)
	src.Clear()
}

// PushFront inserts a new node holding v at the front of the list and returns it.
func (l *List[T]) PushFront(v T) *Node[T] {
	c := l.lazyInit()
	return c.insertAfter(&Node[T]{Value: v}, c.head)
}

// PushFrontNode links n at the front of the list. If n is linked into a list, it's unlinked from it first.
// Nil handles are ignored.
func (l *List[T]) PushFrontNode(n *Node[T]) *Node[T] {
	if n == nil || n.sentinel {
		return nil
	}
	c := l.lazyInit()
	if n.owner != nil {
		n.owner.unlink(n)
	}
	return c.insertAfter(n, c.head)
}

// PushBack inserts a new node holding v at the back of the list and returns it.
func (l *List[T]) PushBack(v T) *Node[T] {
	c := l.lazyInit()
	return c.insertAfter(&Node[T]{Value: v}, c.tail.prev)
}

// PushBackNode links n at the back of the list. If n is linked into a list, it's unlinked from it first.
// Nil handles are ignored.
func (l *List[T]) PushBackNode(n *Node[T]) *Node[T] {
	if n == nil || n.sentinel {
		return nil
	}
	c := l.lazyInit()
	if n.owner != nil {
		n.owner.unlink(n)
	}
	return c.insertAfter(n, c.tail.prev)
}

// PushBackAll appends the given values in order.
func (l *List[T]) PushBackAll(values ...T) {
	for _, v := range values {
		l.PushBack(v)
	}
}

// Remove unlinks n from the list. It does nothing if n is nil or not linked into l,
// so the result of a failed Search can be passed in directly.
func (l *List[T]) Remove(n *Node[T]) {
	if !l.contains(n) {
		return
	}
	l.c.unlink(n)
}

// MoveToFront moves n to the front of the list. It does nothing if n is nil or not linked into l.
func (l *List[T]) MoveToFront(n *Node[T]) {
	if !l.contains(n) {
		return
	}
	l.c.unlink(n)
	l.c.insertAfter(n, l.c.head)
}

// MoveToBack moves n to the back of the list. It does nothing if n is nil or not linked into l.
func (l *List[T]) MoveToBack(n *Node[T]) {
	if !l.contains(n) {
		return
	}
	l.c.unlink(n)
	l.c.insertAfter(n, l.c.tail.prev)
}

func (l *List[T]) contains(n *Node[T]) bool {
	return n != nil && l.c != nil && n.owner == l.c
}

// Front returns the first node, or ErrEmptyList if the list is empty.
func (l *List[T]) Front() (*Node[T], error) {
	if l.IsEmpty() {
		return nil, ErrEmptyList
	}
	return l.c.head.next, nil
}

// Back returns the last node, or ErrEmptyList if the list is empty.
func (l *List[T]) Back() (*Node[T], error) {
	if l.IsEmpty() {
		return nil, ErrEmptyList
	}
	return l.c.tail.prev, nil
}

// Search returns the first node holding a value equal to target, or nil if there is none.
func (l *List[T]) Search(target T) *Node[T] {
	c := l.lazyInit()
	for n := c.head.next; n != c.tail; n = n.next {
		if n.Value == target {
			return n
		}
	}
	return nil
}

// Reverse reverses the order of the values in place. Nodes stay where they are, only their values are exchanged
// with their mirror node, so a handle keeps pointing at the same position with a different value.
func (l *List[T]) Reverse() {
	c := l.lazyInit()
	front, back := c.head.next, c.tail.prev
	// Stop when the cursors meet (odd length) or have just passed each other (even length, including empty).
	for front != back && front.prev != back {
		front.Value, back.Value = back.Value, front.Value
		front = front.next
		back = back.prev
	}
}

// Equal returns whether l and other hold equal values in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil {
		return false
	}
	if l.Size() != other.Size() {
		return false
	}
	a, b := l.lazyInit(), other.lazyInit()
	for n, m := a.head.next, b.head.next; n != a.tail && m != b.tail; n, m = n.next, m.next {
		if n.Value != m.Value {
			return false
		}
	}
	return true
}

// IsEmpty returns whether the list holds no values.
func (l *List[T]) IsEmpty() bool {
	c := l.lazyInit()
	return c.head.next == c.tail
}

// Size returns the number of values in the list.
func (l *List[T]) Size() int {
	if l.c == nil {
		return 0
	}
	return l.c.len
}

// Values returns the values of the list in order.
func (l *List[T]) Values() []T {
	c := l.lazyInit()
	result := make([]T, 0, c.len)
	for n := c.head.next; n != c.tail; n = n.next {
		result = append(result, n.Value)
	}
	return result
}

// Clear removes all values. Every node is unlinked one by one, so outstanding handles
// don't keep the rest of the chain reachable. The list can be reused afterwards.
func (l *List[T]) Clear() {
	c := l.lazyInit()
	n := c.head.next
	for n != c.tail {
		next := n.next
		n.next = nil
		n.prev = nil
		n.owner = nil
		n = next
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	c.len = 0
}
