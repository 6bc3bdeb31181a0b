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

// Showkey displays the raw sequence the terminal sends for each key
// pressed, together with its PC key name when the sequence is one of the
// known console sequences. Press ctrl-q to quit.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/timburks/gottbuild/pkg/config"
	"github.com/timburks/gottbuild/pkg/screen"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "showkey: %v\n", err)
		os.Exit(1)
	}
	cfg.SetupLogging()

	// The terminal belongs to termbox, so log to a file.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.gottlog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open log file")
	}
	defer f.Close()
	logrus.SetOutput(f)

	s, err := screen.NewScreen()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open terminal")
	}
	defer s.Close()

	d := screen.NewDecoder()
	message := ""
	for {
		s.Render(message)
		raw, err := s.GetNextKey()
		if err != nil {
			logrus.WithError(err).Error("Failed to read key")
			return
		}
		if len(raw) == 0 {
			continue
		}
		if string(raw) == screen.KeyQuit {
			return
		}
		message = d.Decode(raw)
		logrus.WithField("key", message).Debug("Key pressed")
	}
}
