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
	"testing"

	"github.com/steelseries/golisp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRoundTrip(t *testing.T) {
	require.Len(t, Table, 57)
	for _, k := range Table {
		seq, ok := Lookup(k.Name)
		require.True(t, ok, k.Name)
		assert.Equal(t, k.Sequence, seq)

		name, ok := NameOf(k.Sequence)
		require.True(t, ok, k.Name)
		assert.Equal(t, k.Name, name)

		name, ok = NameOfRaw(Raw(k.Sequence))
		require.True(t, ok, k.Name)
		assert.Equal(t, k.Name, name)
	}
}

func TestSequences(t *testing.T) {
	assert.Equal(t, "\xe0H", PCUp)
	assert.Equal(t, "\x1bOx", PCUp1)
	assert.Equal(t, "^@;", PCF1)
	assert.Equal(t, `^@\`, PCShiftF9)

	_, ok := Lookup("PC_NOPE")
	assert.False(t, ok)
	_, ok = NameOf("\x1b[A")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, len(Table))
	assert.Equal(t, "PC_ALT_F1", names[0])
	assert.IsIncreasing(t, names)
}

func TestRaw(t *testing.T) {
	assert.Equal(t, []byte{0x00, ';'}, Raw(PCF1))
	assert.Equal(t, []byte{0xe0, 0x03}, Raw(PCNull))
	assert.Equal(t, []byte{0x00, '\\'}, Raw(PCShiftF9))
	assert.Equal(t, []byte{0x7f}, Raw("^?"))
	assert.Equal(t, []byte{0x01}, Raw("^a"))
	assert.Equal(t, []byte("a^"), Raw("a^"))
	assert.Equal(t, []byte("^1"), Raw("^1"))
	assert.Equal(t, []byte("\x1bOx"), Raw(PCUp1))
}

func TestNotation(t *testing.T) {
	assert.Equal(t, "^@;", Notation(Raw(PCF1)))
	assert.Equal(t, `\eOx`, Notation([]byte(PCUp1)))
	assert.Equal(t, `\xE0H`, Notation([]byte(PCUp)))
	assert.Equal(t, "^?q", Notation([]byte{0x7f, 'q'}))
}

func TestBindLisp(t *testing.T) {
	BindLisp(golisp.Global)

	value, err := golisp.ParseAndEval("PC_UP1")
	require.NoError(t, err)
	require.True(t, golisp.StringP(value))
	assert.Equal(t, PCUp1, golisp.StringValue(value))

	value, err = golisp.ParseAndEval("(key-name PC_HOME)")
	require.NoError(t, err)
	require.True(t, golisp.StringP(value))
	assert.Equal(t, "PC_HOME", golisp.StringValue(value))

	value, err = golisp.ParseAndEval(`(key-sequence "PC_ALT_F3")`)
	require.NoError(t, err)
	assert.Equal(t, PCAltF3, golisp.StringValue(value))

	golisp.Global.BindTo(golisp.SymbolWithName("pressed"), golisp.StringWithValue(string(Raw(PCShiftF2))))
	value, err = golisp.ParseAndEval("(raw-key-name pressed)")
	require.NoError(t, err)
	require.True(t, golisp.StringP(value))
	assert.Equal(t, "PC_SHIFT_F2", golisp.StringValue(value))

	_, err = golisp.ParseAndEval("(key-name 42)")
	assert.Error(t, err)
}
