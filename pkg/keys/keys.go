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
	"fmt"
	"sort"
	"strings"
)

// A Key pairs a symbolic name with its sequence in keymap notation.
type Key struct {
	Name     string
	Sequence string
}

var (
	byName = make(map[string]string)
	bySeq  = make(map[string]string)
	byRaw  = make(map[string]string)
)

func init() {
	for _, k := range Table {
		byName[k.Name] = k.Sequence
		// the first declared name wins for shared sequences
		if _, ok := bySeq[k.Sequence]; !ok {
			bySeq[k.Sequence] = k.Name
		}
		raw := string(Raw(k.Sequence))
		if _, ok := byRaw[raw]; !ok {
			byRaw[raw] = k.Name
		}
	}
}

// Lookup returns the sequence for a symbolic name such as "PC_UP".
func Lookup(name string) (string, bool) {
	seq, ok := byName[name]
	return seq, ok
}

// NameOf returns the symbolic name of a sequence in keymap notation.
func NameOf(seq string) (string, bool) {
	name, ok := bySeq[seq]
	return name, ok
}

// NameOfRaw returns the symbolic name of bytes read from a terminal.
func NameOfRaw(raw []byte) (string, bool) {
	name, ok := byRaw[string(raw)]
	return name, ok
}

// Names returns all symbolic names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Raw expands keymap notation: "^@" is NUL, "^A" through "^_" are the
// control characters 1-31 and "^?" is DEL. A "^" before any other
// character, or at the end, is kept as is.
func Raw(seq string) []byte {
	out := make([]byte, 0, len(seq))
	for i := 0; i < len(seq); i++ {
		c := seq[i]
		if c != '^' || i+1 == len(seq) {
			out = append(out, c)
			continue
		}
		next := seq[i+1]
		switch {
		case next == '?':
			out = append(out, 0x7f)
		case next >= '@' && next <= '_':
			out = append(out, next-'@')
		case next >= 'a' && next <= 'z':
			out = append(out, next-'a'+1)
		default:
			out = append(out, c)
			continue
		}
		i++
	}
	return out
}

// Notation renders raw terminal bytes in keymap notation. Bytes outside
// printable ASCII other than control characters are written as \xNN.
func Notation(raw []byte) string {
	var b strings.Builder
	for _, c := range raw {
		switch {
		case c == 0x1b:
			b.WriteString(`\e`)
		case c < 0x20:
			b.WriteByte('^')
			b.WriteByte(c + '@')
		case c == 0x7f:
			b.WriteString("^?")
		case c > 0x7f:
			fmt.Fprintf(&b, `\x%02X`, c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
