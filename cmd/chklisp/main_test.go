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
	"bytes"
	"runtime/debug"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/gottbuild/pkg/version"
)

func runChklisp(t *testing.T, build version.Build, args ...string) (int, string, string) {
	t.Setenv("GOTT_LISP_VERSION", "")
	t.Setenv("GOTT_LOG_LEVEL", "error")
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"chklisp"}, args...), build, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunSuccess(t *testing.T) {
	code, stdout, stderr := runChklisp(t, version.Build{Detected: 10203}, "gott", "10000")
	assert.Equal(t, exitSuccess, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestRunAdvisory(t *testing.T) {
	code, stdout, stderr := runChklisp(t, version.Build{Detected: 10203}, "gott", "10000", "10300")
	assert.Equal(t, exitSuccess, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Your golisp version is 1.2.3.")
	assert.Contains(t, stderr, "version 1.3.0")
}

func TestRunTooLow(t *testing.T) {
	code, stdout, stderr := runChklisp(t, version.Build{}, "gott", "10000")
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "This version of gott requires golisp version 1.0.0.")
}

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{{}, {"gott"}, {"gott", "1", "2", "3"}} {
		code, _, stderr := runChklisp(t, version.Build{Detected: 10203}, args...)
		assert.Equal(t, exitFailure, code)
		assert.Contains(t, stderr, "Usage: chklisp <PGM> <MIN-VERSION> [<SUGG-VERSION>]")
	}
}

func TestRunStrict(t *testing.T) {
	code, _, _ := runChklisp(t, version.Build{Detected: 10203}, "gott", "1.0")
	assert.Equal(t, exitSuccess, code)

	code, _, stderr := runChklisp(t, version.Build{Detected: 10203}, "--strict", "gott", "1.0")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "invalid version number")
}

func TestRunVersion(t *testing.T) {
	code, stdout, _ := runChklisp(t, version.Build{Detected: 20103, Linked: 20104}, "--version")
	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, stdout, "chklisp "+version.Tool)
	assert.Contains(t, stdout, "configured 2.1.3, linked 2.1.4")
}

func TestRunDashArguments(t *testing.T) {
	// read leniently as a minimum of 0
	code, stdout, stderr := runChklisp(t, version.Build{Detected: 10203}, "gott", "-5")
	assert.Equal(t, exitSuccess, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)

	code, _, stderr = runChklisp(t, version.Build{Detected: 10203}, "gott", "10000", "-1")
	assert.Equal(t, exitSuccess, code)
	assert.Empty(t, stderr)

	code, _, stderr = runChklisp(t, version.Build{Detected: 10203}, "--strict", "gott", "-5")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "invalid version number")
}

func TestRunUnknownFlag(t *testing.T) {
	code, stdout, stderr := runChklisp(t, version.Build{Detected: 10203}, "--bogus", "gott", "1")
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "bogus")
	assert.Contains(t, stderr, "Usage: chklisp <PGM> <MIN-VERSION> [<SUGG-VERSION>]")
}

func TestRunHelp(t *testing.T) {
	code, stdout, stderr := runChklisp(t, version.Build{Detected: 10203}, "--help")
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Usage: chklisp")
	assert.Contains(t, stderr, "--strict")
}

func TestRunCurrentBuild(t *testing.T) {
	info, ok := debug.ReadBuildInfo()
	require.True(t, ok)
	linked := false
	for _, dep := range info.Deps {
		if dep.Path == version.LispModule {
			linked = true
		}
	}
	assert.True(t, linked, "%s missing from build information", version.LispModule)

	build := version.Current()
	assert.Equal(t, version.LinkedFrom(info, version.LispModule), build.Linked)

	// The configured version is overridden so the outcome does not
	// depend on how the test binary was linked.
	t.Setenv("GOTT_LISP_VERSION", strconv.FormatUint(uint64(build.Linked), 10))
	t.Setenv("GOTT_LOG_LEVEL", "error")
	var stdout, stderr bytes.Buffer
	code := run([]string{"chklisp", "gott", "0"}, build, &stdout, &stderr)
	assert.Equal(t, exitSuccess, code)
	assert.Empty(t, stderr.String())
}

func TestRunEnvironmentOverride(t *testing.T) {
	var stdout, stderr bytes.Buffer
	t.Setenv("GOTT_LISP_VERSION", "20000")
	t.Setenv("GOTT_LOG_LEVEL", "error")
	code := run([]string{"chklisp", "gott", "20000"}, version.Build{}, &stdout, &stderr)
	assert.Equal(t, exitSuccess, code)
	assert.Empty(t, stderr.String())
}
