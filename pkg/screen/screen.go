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

// Package screen reads raw key sequences from the terminal with termbox
// and draws the showkey display.
package screen

import (
	"fmt"

	"github.com/nsf/termbox-go"
	"github.com/sirupsen/logrus"
	"github.com/steelseries/golisp"

	"github.com/timburks/gottbuild/pkg/keys"
)

// KeyQuit is the raw sequence that ends a showkey session (Ctrl-Q).
const KeyQuit = "\x11"

type Size struct {
	Rows int
	Cols int
}

// The Screen shows the most recent key sequence and its name.
type Screen struct {
	size Size   // screen size
	data []byte // raw event buffer
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	return &Screen{data: make([]byte, 32)}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(message string) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.size.Cols, s.size.Rows = termbox.Size()
	s.RenderLine(0, " showkey - press a key, ctrl-q to quit ", termbox.ColorBlack, termbox.ColorWhite)
	s.RenderLine(s.size.Rows-1, message, termbox.ColorWhite, termbox.ColorBlack)
	termbox.SetCursor(0, 2)
	termbox.Flush()
}

func (s *Screen) RenderLine(row int, text string, fg, bg termbox.Attribute) {
	for len(text) < s.size.Cols {
		text = text + " "
	}
	if len(text) > s.size.Cols {
		text = text[0:s.size.Cols]
	}
	for x, ch := range text {
		termbox.SetCell(x, row, ch, fg, bg)
	}
}

// GetNextKey blocks until the terminal delivers input and returns the
// raw bytes. Resize events return no bytes.
func (s *Screen) GetNextKey() ([]byte, error) {
	event := termbox.PollRawEvent(s.data)
	switch event.Type {
	case termbox.EventError:
		return nil, event.Err
	case termbox.EventRaw:
		raw := make([]byte, event.N)
		copy(raw, s.data[:event.N])
		return raw, nil
	case termbox.EventResize:
		termbox.Flush()
	}
	return nil, nil
}

// A Decoder names raw key sequences by evaluating raw-key-name in the
// Lisp environment, where the PC key names are bound.
type Decoder struct {
	key *golisp.Data // symbol holding the sequence being decoded
}

func NewDecoder() *Decoder {
	keys.BindLisp(golisp.Global)
	return &Decoder{key: golisp.SymbolWithName("last-key")}
}

// Decode describes a raw sequence by its key name when it has one,
// followed by the sequence in keymap notation.
func (d *Decoder) Decode(raw []byte) string {
	notation := keys.Notation(raw)
	golisp.Global.BindTo(d.key, golisp.StringWithValue(string(raw)))
	value, err := golisp.ParseAndEval("(raw-key-name last-key)")
	if err != nil {
		logrus.WithError(err).WithField("key", notation).Warn("Failed to name key")
		return notation
	}
	if golisp.StringP(value) {
		return fmt.Sprintf("%s  %s", golisp.StringValue(value), notation)
	}
	return notation
}
