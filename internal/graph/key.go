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

// Package graph implements the reactive propagation engine: cell state,
// the state registry, the will_update/update wave protocol, and the
// various computed/mutable/derived state machines. The cells package is a
// thin, ergonomic façade over this package.
package graph

import (
	"fmt"
	"reflect"
	"strings"
)

// Key identifies a logical cell. Two handles constructed with equal keys
// share the same backing state; a unique key never shares state with
// anything and never touches the registry.
type Key interface {
	fmt.Stringer
	Equal(other Key) bool
	IsUnique() bool
	cacheKey() any
}

type uniqueToken struct{ label string }

type uniqueKey struct {
	token *uniqueToken
}

// NewUniqueKey returns a key that identifies exactly one allocation; it
// never hits the registry and is never equal to any other key, including
// another unique key built with the same label.
func NewUniqueKey(label string) Key {
	return uniqueKey{token: &uniqueToken{label: label}}
}

func (k uniqueKey) IsUnique() bool { return true }

func (k uniqueKey) Equal(other Key) bool {
	o, ok := other.(uniqueKey)
	return ok && o.token == k.token
}

func (k uniqueKey) cacheKey() any { return k.token }

func (k uniqueKey) String() string { return fmt.Sprintf("unique(%s)", k.token.label) }

// valueKey identifies a cell by a type tag plus one or more contained
// values, compared by deep equality. Two cells built from equal value keys
// share state.
type valueKey struct {
	tag   string
	parts []any
}

// NewValueKey builds a key from a type tag and the values that, taken
// together, identify the cell (e.g. a constant's value, or a computed
// cell's declared identity plus its closed-over parameters).
func NewValueKey(tag string, parts ...any) Key {
	return valueKey{tag: tag, parts: append([]any(nil), parts...)}
}

func (k valueKey) IsUnique() bool { return false }

func (k valueKey) Equal(other Key) bool {
	o, ok := other.(valueKey)
	if !ok || o.tag != k.tag || len(o.parts) != len(k.parts) {
		return false
	}
	for i := range k.parts {
		if !reflect.DeepEqual(k.parts[i], o.parts[i]) {
			return false
		}
	}
	return true
}

func (k valueKey) cacheKey() any {
	reprs := make([]string, len(k.parts))
	for i, p := range k.parts {
		reprs[i] = fmt.Sprintf("%#v", p)
	}
	return k.tag + "\x00" + strings.Join(reprs, "\x00")
}

func (k valueKey) String() string {
	return fmt.Sprintf("value(%s, %v)", k.tag, k.parts)
}
