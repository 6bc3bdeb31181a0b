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

// Package gate decides whether the Lisp library a gott build is linked
// against is recent enough. A check has three outcomes: the detected
// version is below the required minimum (an error), it meets the minimum
// but is below a suggested version (an advisory is printed and the check
// passes), or it meets both (the check passes silently).
//
// Results are reported as error values. Translating them to a process
// exit status is left to the command that runs the check.
package gate
