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
package gate

import (
	"fmt"

	"github.com/timburks/gottbuild/pkg/version"
)

// Args holds the inputs of one check.
type Args struct {
	Program      string         // used in the usage line
	Label        string         // name of the program being built
	Min          version.Number // lowest acceptable version
	Suggested    version.Number // recommended version
	HasSuggested bool           // false means Suggested defaults to the detected version
}

// ParseArgs builds Args from the positional arguments that follow the
// program name. Version arguments are scanned leniently unless strict is
// set, in which case malformed numbers are errors.
func ParseArgs(program string, positional []string, strict bool) (Args, error) {
	if len(positional) < 2 || len(positional) > 3 {
		return Args{}, ErrUsage
	}
	args := Args{Program: program, Label: positional[0]}
	var err error
	if args.Min, err = parseNumber(positional[1], strict); err != nil {
		return Args{}, fmt.Errorf("minimum version: %w", err)
	}
	if len(positional) == 3 {
		if args.Suggested, err = parseNumber(positional[2], strict); err != nil {
			return Args{}, fmt.Errorf("suggested version: %w", err)
		}
		args.HasSuggested = true
	}
	return args, nil
}

func parseNumber(s string, strict bool) (version.Number, error) {
	if strict {
		return version.Parse(s)
	}
	return version.ParseLenient(s), nil
}

// Usage returns the one-line usage message for program.
func Usage(program string) string {
	return fmt.Sprintf("Usage: %s <PGM> <MIN-VERSION> [<SUGG-VERSION>]", program)
}
