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
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	// Linked so that its module version is recorded in the build
	// information read by version.Current.
	_ "github.com/steelseries/golisp"

	"github.com/timburks/gottbuild/pkg/config"
	"github.com/timburks/gottbuild/pkg/gate"
	"github.com/timburks/gottbuild/pkg/version"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

func main() {
	os.Exit(run(os.Args, version.Current(), os.Stdout, os.Stderr))
}

func run(argv []string, build version.Build, stdout, stderr io.Writer) int {
	program := argv[0]

	flags := pflag.NewFlagSet(program, pflag.ContinueOnError)
	flags.SetOutput(stderr)
	// Everything after the label is positional, so "-5" is a version.
	flags.SetInterspersed(false)
	strict := flags.Bool("strict", false, "reject malformed version numbers instead of reading them as 0")
	showVersion := flags.Bool("version", false, "print the chklisp version and exit")
	// Parse errors and help are reported below.
	flags.Usage = func() {}
	if err := flags.Parse(argv[1:]); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(stderr, "%s: %v\n", program, err)
		}
		fmt.Fprintln(stderr, gate.Usage(program))
		flags.PrintDefaults()
		return exitFailure
	}

	if *showVersion {
		fmt.Fprintf(stdout, "chklisp %s (%s configured %s, linked %s)\n",
			version.Tool, version.LispModule, build.Detected, build.Linked)
		return exitSuccess
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", program, err)
		return exitFailure
	}
	cfg.SetupLogging()

	g := cfg.Gate(build)
	g.Out = stderr
	if err := g.Run(program, flags.Args(), *strict); err != nil {
		logrus.WithError(err).Debug("Version check failed")
		return exitFailure
	}
	return exitSuccess
}
