// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package ops provides the leaf-level arithmetic, comparison, and boolean
// operators over cells: thin wrappers around cells.Computed, included as
// examples of the core rather than as part of it.
package ops

import "github.com/cellgraph/cells"

// Number is the constraint satisfied by every type the arithmetic
// operators below accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Ordered is the constraint satisfied by every type the comparison
// operators below accept.
type Ordered interface {
	Number | ~string
}

func binary[A, B, R any](a cells.Cell[A], b cells.Cell[B], f func(A, B) R) cells.Cell[R] {
	return cells.Computed(func() (R, error) {
		av, err := cells.Get(a)
		if err != nil {
			var zero R
			return zero, err
		}
		bv, err := cells.Get(b)
		if err != nil {
			var zero R
			return zero, err
		}
		return f(av, bv), nil
	}, a, b)
}

func unary[A, R any](a cells.Cell[A], f func(A) R) cells.Cell[R] {
	return cells.Computed(func() (R, error) {
		av, err := cells.Get(a)
		if err != nil {
			var zero R
			return zero, err
		}
		return f(av), nil
	}, a)
}

// Add returns a+b.
func Add[T Number](a, b cells.Cell[T]) cells.Cell[T] {
	return binary(a, b, func(a, b T) T { return a + b })
}

// Sub returns a-b.
func Sub[T Number](a, b cells.Cell[T]) cells.Cell[T] {
	return binary(a, b, func(a, b T) T { return a - b })
}

// Neg returns -a.
func Neg[T Number](a cells.Cell[T]) cells.Cell[T] {
	return unary(a, func(a T) T { return -a })
}

// Mul returns a*b.
func Mul[T Number](a, b cells.Cell[T]) cells.Cell[T] {
	return binary(a, b, func(a, b T) T { return a * b })
}

// Div returns a/b.
func Div[T Number](a, b cells.Cell[T]) cells.Cell[T] {
	return binary(a, b, func(a, b T) T { return a / b })
}

// Eq returns a==b.
func Eq[T comparable](a, b cells.Cell[T]) cells.Cell[bool] {
	return binary(a, b, func(a, b T) bool { return a == b })
}

// Neq returns a!=b.
func Neq[T comparable](a, b cells.Cell[T]) cells.Cell[bool] {
	return binary(a, b, func(a, b T) bool { return a != b })
}

// Lt returns a<b.
func Lt[T Ordered](a, b cells.Cell[T]) cells.Cell[bool] {
	return binary(a, b, func(a, b T) bool { return a < b })
}

// Lte returns a<=b.
func Lte[T Ordered](a, b cells.Cell[T]) cells.Cell[bool] {
	return binary(a, b, func(a, b T) bool { return a <= b })
}

// Gt returns a>b.
func Gt[T Ordered](a, b cells.Cell[T]) cells.Cell[bool] {
	return binary(a, b, func(a, b T) bool { return a > b })
}

// Gte returns a>=b.
func Gte[T Ordered](a, b cells.Cell[T]) cells.Cell[bool] {
	return binary(a, b, func(a, b T) bool { return a >= b })
}

// And is the short-circuiting logical and of a and b: b is only read when
// a is true.
func And(a, b cells.Cell[bool]) cells.Cell[bool] {
	return cells.Computed(func() (bool, error) {
		av, err := cells.Get(a)
		if err != nil || !av {
			return false, err
		}
		return cells.Get(b)
	}, a, b)
}

// Or is the short-circuiting logical or of a and b: b is only read when a
// is false.
func Or(a, b cells.Cell[bool]) cells.Cell[bool] {
	return cells.Computed(func() (bool, error) {
		av, err := cells.Get(a)
		if err != nil || av {
			return true, err
		}
		return cells.Get(b)
	}, a, b)
}

// Not returns !a.
func Not(a cells.Cell[bool]) cells.Cell[bool] {
	return unary(a, func(a bool) bool { return !a })
}

// Select returns ifTrue's value when condition is true, else ifFalse's.
func Select[T any](condition cells.Cell[bool], ifTrue, ifFalse cells.Cell[T]) cells.Cell[T] {
	return cells.ComputedDynamic(func() (T, error) {
		c, err := cells.Get(condition)
		if err != nil {
			var zero T
			return zero, err
		}
		if c {
			return cells.Get(ifTrue)
		}
		return cells.Get(ifFalse)
	})
}
