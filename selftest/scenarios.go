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

package selftest

import (
	"errors"
	"fmt"
	"io"

	"github.com/nuts-foundation/go-dlist/core"
	"github.com/nuts-foundation/go-dlist/dlist"
	"github.com/nuts-foundation/go-dlist/selftest/log"
)

// ErrScenarioFailed is returned by a scenario when an expectation on the list doesn't hold.
var ErrScenarioFailed = errors.New("expectation failed")

// Scenario is a named check of list behavior.
type Scenario struct {
	Name string
	Run  func(env Env) error
}

// Env is passed to every scenario.
type Env struct {
	Config Config
	// Out receives list renderings when Config.Print is set.
	Out io.Writer
}

func (e Env) print(list *dlist.List[int]) {
	if e.Config.Print && e.Out != nil {
		_, _ = list.WriteTo(e.Out)
	}
}

// Scenarios returns all scenarios of the self-test, in the order they're run.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "build", Run: buildScenario},
		{Name: "move", Run: moveScenario},
		{Name: "search-remove", Run: searchRemoveScenario},
		{Name: "reverse", Run: reverseScenario},
		{Name: "drain", Run: drainScenario},
		{Name: "construction-size", Run: constructionSizeScenario},
		{Name: "copy-independence", Run: copyIndependenceScenario},
		{Name: "move-semantics", Run: moveSemanticsScenario},
		{Name: "reverse-round-trip", Run: reverseRoundTripScenario},
		{Name: "nil-handles", Run: nilHandlesScenario},
		{Name: "empty-access", Run: emptyAccessScenario},
		{Name: "teardown", Run: teardownScenario},
	}
}

func failf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrScenarioFailed, fmt.Sprintf(format, args...))
}

func expectList(actual *dlist.List[int], expected ...int) error {
	want := dlist.New(expected...)
	if !actual.Equal(want) {
		return failf("expected %s, got %s", want, actual)
	}
	if actual.Size() != len(expected) {
		return failf("expected size %d, got %d", len(expected), actual.Size())
	}
	return nil
}

func expectEnds(list *dlist.List[int], front int, back int) error {
	node, err := list.Front()
	if err != nil {
		return err
	}
	if node.Value != front {
		return failf("expected front %d, got %d", front, node.Value)
	}
	if node, err = list.Back(); err != nil {
		return err
	}
	if node.Value != back {
		return failf("expected back %d, got %d", back, node.Value)
	}
	return nil
}

func buildScenario(env Env) error {
	list := dlist.New(1, 2)
	list.PushBack(3)
	list.PushBackAll(4, 5)
	list.PushFront(0)
	env.print(list)
	return expectList(list, 0, 1, 2, 3, 4, 5)
}

func moveScenario(env Env) error {
	list := dlist.New(0, 1, 2, 3, 4, 5)

	front, err := list.Front()
	if err != nil {
		return err
	}
	list.MoveToBack(front)
	env.print(list)
	if err := expectList(list, 1, 2, 3, 4, 5, 0); err != nil {
		return err
	}
	if err := expectEnds(list, 1, 0); err != nil {
		return err
	}

	back, err := list.Back()
	if err != nil {
		return err
	}
	list.MoveToFront(back)
	env.print(list)
	if err := expectList(list, 0, 1, 2, 3, 4, 5); err != nil {
		return err
	}
	return expectEnds(list, 0, 5)
}

func searchRemoveScenario(env Env) error {
	list := dlist.New(0, 1, 2, 3, 4, 5)
	node := list.Search(2)
	if node == nil {
		return failf("expected to find 2 in %s", list)
	}
	list.Remove(node)
	env.print(list)
	return expectList(list, 0, 1, 3, 4, 5)
}

func reverseScenario(env Env) error {
	list := dlist.New(0, 1, 3, 4, 5)
	list.Reverse()
	env.print(list)
	return expectList(list, 5, 4, 3, 1, 0)
}

func drainScenario(_ Env) error {
	list := dlist.New(5, 4, 3, 1, 0)
	for !list.IsEmpty() {
		front, err := list.Front()
		if err != nil {
			return err
		}
		list.Remove(front)
	}
	if !list.Equal(dlist.New[int]()) {
		return failf("expected drained list to equal an empty list, got %s", list)
	}
	return expectList(list)
}

func constructionSizeScenario(_ Env) error {
	list := dlist.New(1, 2, 3, 4, 5)
	if list.Size() != 5 {
		return failf("expected size 5, got %d", list.Size())
	}
	return nil
}

func copyIndependenceScenario(_ Env) error {
	list := dlist.New(1, 2, 3, 4, 5)
	if err := expectList(list, 1, 2, 3, 4, 5); err != nil {
		return err
	}
	clone := list.Clone()

	front, err := list.Front()
	if err != nil {
		return err
	}
	back, err := list.Back()
	if err != nil {
		return err
	}
	front.Value = -111
	back.Value = -111

	if err := expectList(list, -111, 2, 3, 4, -111); err != nil {
		return err
	}
	if err := expectList(clone, 1, 2, 3, 4, 5); err != nil {
		return err
	}
	if err := expectEnds(list, -111, -111); err != nil {
		return err
	}
	if err := expectEnds(clone, 1, 5); err != nil {
		return err
	}

	// and the other way around
	cloneFront, err := clone.Front()
	if err != nil {
		return err
	}
	cloneFront.Value = 42
	return expectEnds(list, -111, -111)
}

func moveSemanticsScenario(_ Env) error {
	source := dlist.New(1, 2, 3)
	taken := dlist.Take(source)
	if err := expectList(taken, 1, 2, 3); err != nil {
		return err
	}
	if !source.IsEmpty() || source.Size() != 0 {
		return failf("expected source to be empty after take, got %s", source)
	}

	target := dlist.New(9)
	target.MoveFrom(taken)
	if err := expectList(target, 1, 2, 3); err != nil {
		return err
	}
	if taken.Size() != 0 {
		return failf("expected source to be empty after move, got %s", taken)
	}

	assigned := dlist.New(7, 7)
	assigned.Assign(target)
	if err := expectList(assigned, 1, 2, 3); err != nil {
		return err
	}
	return expectList(target, 1, 2, 3)
}

func reverseRoundTripScenario(_ Env) error {
	for size := 0; size <= 8; size++ {
		values := make([]int, size)
		for i := range values {
			values[i] = i
		}
		list := dlist.New(values...)
		list.Reverse()
		reversed := list.Values()
		for i := range reversed {
			if reversed[i] != size-1-i {
				return failf("reverse of %d values yielded %s", size, list)
			}
		}
		list.Reverse()
		if err := expectList(list, values...); err != nil {
			return err
		}
	}
	return nil
}

func nilHandlesScenario(_ Env) error {
	list := dlist.New(0, 1, 2, 3)
	snapshot := list.Clone()

	list.Remove(list.Search(42))
	list.MoveToFront(nil)
	list.MoveToBack(nil)
	if !list.Equal(snapshot) || list.Size() != snapshot.Size() {
		return failf("expected nil handles to leave %s unchanged, got %s", snapshot, list)
	}

	front, err := list.Front()
	if err != nil {
		return err
	}
	list.MoveToFront(front)
	back, err := list.Back()
	if err != nil {
		return err
	}
	list.MoveToBack(back)
	if !list.Equal(snapshot) {
		return failf("expected moving the ends in place to leave %s unchanged, got %s", snapshot, list)
	}
	return nil
}

func emptyAccessScenario(_ Env) error {
	list := dlist.New[int]()
	if _, err := list.Front(); !errors.Is(err, dlist.ErrEmptyList) {
		return failf("expected Front of an empty list to fail with %v, got %v", dlist.ErrEmptyList, err)
	}
	if _, err := list.Back(); !errors.Is(err, dlist.ErrEmptyList) {
		return failf("expected Back of an empty list to fail with %v, got %v", dlist.ErrEmptyList, err)
	}
	if !list.IsEmpty() || list.Size() != 0 {
		return failf("expected new list to be empty")
	}
	if list.Search(0) != nil {
		return failf("expected search in an empty list to find nothing")
	}
	if rendered := list.String(); rendered != "List()" {
		return failf("expected empty list to render as List(), got %s", rendered)
	}
	return nil
}

func teardownScenario(env Env) error {
	list := dlist.New[int]()
	for i := 0; i < env.Config.TeardownSize; i++ {
		list.PushBack(i)
	}
	if list.Size() != env.Config.TeardownSize {
		return failf("expected size %d, got %d", env.Config.TeardownSize, list.Size())
	}
	log.Logger().WithField(core.LogFieldListSize, list.Size()).Debug("Clearing list")
	list.Clear()
	return expectList(list)
}
