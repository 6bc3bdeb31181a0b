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
	"runtime/debug"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// LispModule is the module path of the Lisp library used as gott's
// macro language.
const LispModule = "github.com/steelseries/golisp"

// lispVersion is the encoded Lisp library version the build was configured
// against. It is set via -ldflags at build time, for example:
//
//	go build -ldflags "-X github.com/timburks/gottbuild/pkg/version.lispVersion=20103"
var lispVersion = ""

// Tool is the version of the gottbuild tools themselves.
var Tool = "0.1.0-dev"

// Build describes the Lisp library versions known to a binary.
type Build struct {
	Detected Number // version the build was configured against, 0 if unknown
	Linked   Number // version found in the module build information, 0 if unknown
}

// Current returns the build information of the running binary.
func Current() Build {
	b := Build{Detected: ParseLenient(lispVersion)}
	if info, ok := debug.ReadBuildInfo(); ok {
		b.Linked = LinkedFrom(info, LispModule)
	}
	return b
}

// LinkedFrom finds the module at path among the dependencies in info and
// encodes its semantic version. Pseudo-versions, missing modules and
// components above 99 for minor or patch all give 0.
func LinkedFrom(info *debug.BuildInfo, path string) Number {
	if info == nil {
		return 0
	}
	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			dep = dep.Replace
		}
		return FromSemver(dep.Version)
	}
	return 0
}

// FromSemver encodes a semantic version such as "v1.2.3".
func FromSemver(v string) Number {
	if !semver.IsValid(v) {
		return 0
	}
	canonical := semver.Canonical(v)
	if pre := semver.Prerelease(canonical); pre != "" {
		// pseudo-versions and prereleases do not name a release
		return 0
	}
	parts := strings.Split(strings.TrimPrefix(canonical, "v"), ".")
	if len(parts) != 3 {
		return 0
	}
	var n [3]uint32
	for i, part := range parts {
		x, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return 0
		}
		n[i] = uint32(x)
	}
	if n[1] > 99 || n[2] > 99 {
		return 0
	}
	return Make(n[0], n[1], n[2])
}
