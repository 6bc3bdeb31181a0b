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

// Package config loads settings shared by the gottbuild commands from
// the environment.
package config

import (
	"os"

	envstruct "code.cloudfoundry.org/go-envstruct"
	"github.com/sirupsen/logrus"

	"github.com/timburks/gottbuild/pkg/gate"
	"github.com/timburks/gottbuild/pkg/version"
)

// Config is read from environment variables.
type Config struct {
	LogLevel    string `env:"GOTT_LOG_LEVEL"`
	LispVersion string `env:"GOTT_LISP_VERSION"` // overrides the compiled-in version when set
	LispName    string `env:"GOTT_LISP_NAME"`
	UpgradeURL  string `env:"GOTT_UPGRADE_URL"`
}

// Load returns the configuration with defaults applied to unset values.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:   logrus.WarnLevel.String(),
		LispName:   gate.DefaultLibrary,
		UpgradeURL: gate.DefaultUpgrade,
	}
	if err := envstruct.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetupLogging sends logrus output to stderr at the configured level.
// An unknown level leaves the current level in place.
func (c Config) SetupLogging() {
	logrus.SetOutput(os.Stderr)
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.WithError(err).Warn("Ignoring log level")
	}
}

// Build applies the configured version override to b.
func (c Config) Build(b version.Build) version.Build {
	if c.LispVersion != "" {
		b.Detected = version.ParseLenient(c.LispVersion)
	}
	return b
}

// Gate returns a gate for b configured with the library name and upgrade
// location.
func (c Config) Gate(b version.Build) *gate.Gate {
	g := gate.New(c.Build(b))
	g.Library = c.LispName
	g.Upgrade = c.UpgradeURL
	return g
}
