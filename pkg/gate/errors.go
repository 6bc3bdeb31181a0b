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

	"github.com/timburks/gottbuild/pkg/version"
)

// ErrUsage is returned when a check is invoked with the wrong number of
// arguments.
var ErrUsage = errors.New("wrong number of arguments")

// A TooLowError reports a detected version below the required minimum.
type TooLowError struct {
	Label    string
	Library  string
	Required version.Number
	Detected version.Number
}

func (e *TooLowError) Error() string {
	return fmt.Sprintf("%s requires %s version %s, found %s", e.Label, e.Library, e.Required, e.Detected)
}

// A MismatchError reports that the version a build was configured against
// differs from the version of the library actually linked.
type MismatchError struct {
	Library  string
	Detected version.Number
	Linked   version.Number
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("configured %s version (%d) does not match the linked library version (%d)",
		e.Library, uint32(e.Detected), uint32(e.Linked))
}
