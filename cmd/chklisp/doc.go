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

// Chklisp checks, during a build, that the Lisp library gott is linked
// against meets a program's version requirements.
//
//	chklisp [--strict] <PGM> <MIN-VERSION> [<SUGG-VERSION>]
//
// Versions are encoded as major*10000 + minor*100 + patch. The version the
// build was configured against is compiled in with
//
//	go build -ldflags "-X github.com/timburks/gottbuild/pkg/version.lispVersion=20103"
//
// or taken from GOTT_LISP_VERSION. An unknown version counts as 0 and so
// fails any minimum.
//
// Exit codes:
//
//	0  the minimum is met (falling short of the suggested version only
//	   prints an advisory)
//	1  wrong arguments (including unknown flags and --help), version below
//	   the minimum, or a configured version that disagrees with the linked
//	   library
//
// All diagnostics are written to stderr. The only output on stdout is the
// answer to --version, which reports the tool and library versions and
// exits 0 without running a check.
//
// The linked version is read from the module build information of the
// golisp library, which chklisp links for that purpose. A pseudo-version
// requirement in go.mod counts as unknown, and the consistency check
// against the configured version is then skipped.
package main
