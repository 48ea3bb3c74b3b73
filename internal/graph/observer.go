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

package graph

// Observer is the polymorphic callback every graph edge terminates in.
// Cell states are themselves observers: that is how graph edges are
// realized, a computed state observes each of its arguments.
type Observer interface {
	WillUpdate(source Key)
	Update(source Key, changed bool)
}

// Observable is the minimal capability the registry, the tracker, and
// argument lists need from a cell state without knowing its value type.
type Observable interface {
	Key() Key
	AddObserver(o Observer)
	RemoveObserver(o Observer)
}

// Valuer is an Observable that can also be read. Derived facilities
// (store, peek, previous, change-filtered compute) are written against
// this interface so they can wrap any concrete state type.
type Valuer[T any] interface {
	Observable
	Value() (T, error)
}
