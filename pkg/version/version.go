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
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// A Number is a three-part version packed into one integer.
// Minor and patch are conventionally 0-99 but this is not enforced.
type Number uint32

var ErrInvalid = errors.New("invalid version number")

func Make(major, minor, patch uint32) Number {
	return Number(major*10000 + minor*100 + patch)
}

func (v Number) Major() uint32 {
	return uint32(v) / 10000
}

func (v Number) Minor() uint32 {
	return (uint32(v) - v.Major()*10000) / 100
}

func (v Number) Patch() uint32 {
	return uint32(v) - v.Major()*10000 - v.Minor()*100
}

func (v Number) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// ParseLenient scans a version the way C's "%u" conversion does:
// leading space and an optional plus sign are skipped, then the longest
// run of digits is read and anything after it ignored. Text without
// leading digits, or a value too large for 32 bits, yields 0.
func ParseLenient(s string) Number {
	digits := leadingDigits(s)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0
	}
	return Number(n)
}

// Parse is the strict form of ParseLenient. The whole string, apart from
// surrounding space, must be an unsigned decimal that fits in 32 bits.
func Parse(s string) (Number, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || leadingDigits(trimmed) != strings.TrimPrefix(trimmed, "+") {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(trimmed, "+"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return Number(n), nil
}

func leadingDigits(s string) string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	s = strings.TrimPrefix(s, "+")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
