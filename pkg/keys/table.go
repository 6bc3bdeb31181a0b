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

// Keypad and cursor keys. The first form of each cursor key is the
// extended scan code, the "1" form the escape sequence sent when the
// keypad is in application mode.
const (
	PCNull      = "\xE0^C"
	PCSlash     = "\x1bOQ"
	PCStar      = "\x1bOR"
	PCMinus     = "\x1bOS"
	PCPlus      = "\x1bOm"
	PCEnter     = "\x1bOM"
	PCKeypad5   = "\x1bOu"
	PCUp        = "\xE0H"
	PCUp1       = "\x1bOx"
	PCDown      = "\xE0P"
	PCDown1     = "\x1bOr"
	PCRight     = "\xE0M"
	PCRight1    = "\x1bOv"
	PCLeft      = "\xE0K"
	PCLeft1     = "\x1bOt"
	PCPageUp    = "\xE0I"
	PCPageUp1   = "\x1bOy"
	PCPageDown  = "\xE0Q"
	PCPageDown1 = "\x1bOs"
	PCInsert    = "\xE0R"
	PCInsert1   = "\x1bOp"
	PCDelete    = "\xE0S"
	PCDelete1   = "\x1bOn"
	PCEnd       = "\xE0O"
	PCEnd1      = "\x1bOq"
	PCHome      = "\xE0G"
	PCHome1     = "\x1bOw"
)

// Function keys
const (
	PCF1  = "^@;"
	PCF2  = "^@<"
	PCF3  = "^@="
	PCF4  = "^@>"
	PCF5  = "^@?"
	PCF6  = "^@@"
	PCF7  = "^@A"
	PCF8  = "^@B"
	PCF9  = "^@C"
	PCF10 = "^@D"
)

// Alt-modified function keys
const (
	PCAltF1  = "^@h"
	PCAltF2  = "^@i"
	PCAltF3  = "^@j"
	PCAltF4  = "^@k"
	PCAltF5  = "^@l"
	PCAltF6  = "^@m"
	PCAltF7  = "^@n"
	PCAltF8  = "^@o"
	PCAltF9  = "^@p"
	PCAltF10 = "^@q"
)

// Shift-modified function keys
const (
	PCShiftF1  = "^@T"
	PCShiftF2  = "^@U"
	PCShiftF3  = "^@V"
	PCShiftF4  = "^@W"
	PCShiftF5  = "^@X"
	PCShiftF6  = "^@Y"
	PCShiftF7  = "^@Z"
	PCShiftF8  = "^@["
	PCShiftF9  = "^@\\"
	PCShiftF10 = "^@]"
)

// Table lists every key in declaration order.
var Table = []Key{
	{"PC_NULL", PCNull},
	{"PC_SLASH", PCSlash},
	{"PC_STAR", PCStar},
	{"PC_MINUS", PCMinus},
	{"PC_PLUS", PCPlus},
	{"PC_ENTER", PCEnter},
	{"PC_KP5", PCKeypad5},
	{"PC_UP", PCUp},
	{"PC_UP1", PCUp1},
	{"PC_DN", PCDown},
	{"PC_DN1", PCDown1},
	{"PC_RT", PCRight},
	{"PC_RT1", PCRight1},
	{"PC_LT", PCLeft},
	{"PC_LT1", PCLeft1},
	{"PC_PGUP", PCPageUp},
	{"PC_PGUP1", PCPageUp1},
	{"PC_PGDN", PCPageDown},
	{"PC_PGDN1", PCPageDown1},
	{"PC_INS", PCInsert},
	{"PC_INS1", PCInsert1},
	{"PC_DEL", PCDelete},
	{"PC_DEL1", PCDelete1},
	{"PC_END", PCEnd},
	{"PC_END1", PCEnd1},
	{"PC_HOME", PCHome},
	{"PC_HOME1", PCHome1},
	{"PC_F1", PCF1},
	{"PC_F2", PCF2},
	{"PC_F3", PCF3},
	{"PC_F4", PCF4},
	{"PC_F5", PCF5},
	{"PC_F6", PCF6},
	{"PC_F7", PCF7},
	{"PC_F8", PCF8},
	{"PC_F9", PCF9},
	{"PC_F10", PCF10},
	{"PC_ALT_F1", PCAltF1},
	{"PC_ALT_F2", PCAltF2},
	{"PC_ALT_F3", PCAltF3},
	{"PC_ALT_F4", PCAltF4},
	{"PC_ALT_F5", PCAltF5},
	{"PC_ALT_F6", PCAltF6},
	{"PC_ALT_F7", PCAltF7},
	{"PC_ALT_F8", PCAltF8},
	{"PC_ALT_F9", PCAltF9},
	{"PC_ALT_F10", PCAltF10},
	{"PC_SHIFT_F1", PCShiftF1},
	{"PC_SHIFT_F2", PCShiftF2},
	{"PC_SHIFT_F3", PCShiftF3},
	{"PC_SHIFT_F4", PCShiftF4},
	{"PC_SHIFT_F5", PCShiftF5},
	{"PC_SHIFT_F6", PCShiftF6},
	{"PC_SHIFT_F7", PCShiftF7},
	{"PC_SHIFT_F8", PCShiftF8},
	{"PC_SHIFT_F9", PCShiftF9},
	{"PC_SHIFT_F10", PCShiftF10},
}
