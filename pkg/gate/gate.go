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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/timburks/gottbuild/pkg/version"
)

const (
	DefaultLibrary = "golisp"
	DefaultUpgrade = "https://" + version.LispModule
)

// A Gate compares the Lisp library versions of a build against the
// requirements of a program and writes its diagnostics to Out.
type Gate struct {
	Build   version.Build
	Library string    // library name used in messages
	Upgrade string    // where a newer library can be obtained
	Out     io.Writer // diagnostics; never standard output
}

func New(build version.Build) *Gate {
	return &Gate{
		Build:   build,
		Library: DefaultLibrary,
		Upgrade: DefaultUpgrade,
		Out:     os.Stderr,
	}
}

// Run parses the positional arguments and checks them. A usage line is
// printed when the argument count is wrong.
func (g *Gate) Run(program string, positional []string, strict bool) error {
	args, err := ParseArgs(program, positional, strict)
	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(g.Out, Usage(program))
		return err
	}
	if err != nil {
		fmt.Fprintf(g.Out, "%s: %v\n", program, err)
		fmt.Fprintln(g.Out, Usage(program))
		return err
	}
	return g.Check(args)
}

// Check applies the requirements in args. It returns nil when the
// detected version meets the minimum; falling short of the suggested
// version only prints an advisory.
func (g *Gate) Check(args Args) error {
	detected := g.Build.Detected
	suggested := args.Suggested
	if !args.HasSuggested {
		suggested = detected
	}
	log := logrus.WithFields(logrus.Fields{
		"label":     args.Label,
		"detected":  detected,
		"linked":    g.Build.Linked,
		"minimum":   args.Min,
		"suggested": suggested,
	})
	log.Debug("Checking library version")

	if err := g.checkLinked(); err != nil {
		log.WithError(err).Debug("Installation problem")
		return err
	}

	if detected < args.Min {
		fmt.Fprintf(g.Out, "This version of %s requires %s version %s.\n", args.Label, g.Library, args.Min)
		return &TooLowError{Label: args.Label, Library: g.Library, Required: args.Min, Detected: detected}
	}

	if detected < suggested {
		fmt.Fprintf(g.Out, "Your %s version is %s.\n", g.Library, detected)
		fmt.Fprintf(g.Out, "To fully utilize this program, you should upgrade the %s library to\n", g.Library)
		fmt.Fprintf(g.Out, "  version %s\n", suggested)
		fmt.Fprintf(g.Out, "This library is available from\n%s.\n", g.Upgrade)
		log.Debug("Library older than suggested")
	}
	return nil
}

// A known linked version must agree with the configured one.
func (g *Gate) checkLinked() error {
	b := g.Build
	if b.Detected == 0 || b.Linked == 0 || b.Detected == b.Linked {
		return nil
	}
	fmt.Fprintf(g.Out, "\n\n******\n")
	fmt.Fprintf(g.Out, "The configured %s version (%d) does not match the linked library version (%d).\n",
		g.Library, uint32(b.Detected), uint32(b.Linked))
	fmt.Fprintf(g.Out, "Check the %s requirement in go.mod and any replace directives,\n", version.LispModule)
	fmt.Fprintf(g.Out, "and the -ldflags used to set the configured version.\n")
	fmt.Fprintf(g.Out, "You have an installation problem. Also try: go clean -cache; make\n")
	fmt.Fprintf(g.Out, "******\n\n")
	return &MismatchError{Library: g.Library, Detected: b.Detected, Linked: b.Linked}
}
