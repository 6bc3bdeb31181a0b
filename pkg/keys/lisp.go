//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package keys

import (
	"errors"
	"sync"

	"github.com/steelseries/golisp"
)

var registerPrimitives sync.Once

// BindLisp defines every key name as a string in env, so that keymaps
// written in Lisp can refer to PC_UP and friends, and registers the
// key-name, raw-key-name and key-sequence primitives.
func BindLisp(env *golisp.SymbolTableFrame) {
	for _, k := range Table {
		env.BindTo(golisp.SymbolWithName(k.Name), golisp.StringWithValue(k.Sequence))
	}
	registerPrimitives.Do(func() {
		golisp.MakePrimitiveFunction("key-name", "1", KeyNameImpl)
		golisp.MakePrimitiveFunction("raw-key-name", "1", RawKeyNameImpl)
		golisp.MakePrimitiveFunction("key-sequence", "1", KeySequenceImpl)
	})
}

// KeyNameImpl returns the symbolic name of a sequence, or nil.
func KeyNameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("key-name requires a string argument")
	}
	if name, ok := NameOf(golisp.StringValue(val)); ok {
		return golisp.StringWithValue(name), nil
	}
	return nil, nil
}

// RawKeyNameImpl returns the symbolic name of bytes read from a terminal,
// or nil.
func RawKeyNameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("raw-key-name requires a string argument")
	}
	if name, ok := NameOfRaw([]byte(golisp.StringValue(val))); ok {
		return golisp.StringWithValue(name), nil
	}
	return nil, nil
}

// KeySequenceImpl returns the sequence for a symbolic name, or nil.
func KeySequenceImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("key-sequence requires a string argument")
	}
	if seq, ok := Lookup(golisp.StringValue(val)); ok {
		return golisp.StringWithValue(seq), nil
	}
	return nil, nil
}
