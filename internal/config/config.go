// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// diff.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Context is the number of matches to include as a prefix and postfix for hunks returned.
	Context int

	// Set by diff.Optimal. The comparison functions in this module always compute a minimal edit
	// script and apply no cost-limiting heuristic, so this flag has no effect on their results.
	Optimal bool

	// If set, textdiff will apply the indent heuristic to shift hunk boundaries to more
	// readable positions.
	IndentHeuristic bool
}

// Default is the default configuration.
var Default = Config{
	Context:         3,
	Optimal:         false,
	IndentHeuristic: false,
}

// Flag describes a single config entry. This is used to detect if options are being applied in a
// context that doesn't support them (e.g. textdiff.IndentHeuristic passed to diff.Hunks).
type Flag int

const (
	Context Flag = 1 << iota
	Optimal
	IndentHeuristic
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

// ColorConfig collects the ANSI SGR codes textdiff.UnifiedColor uses to render a diff. An empty
// field means no escape sequence is emitted for that role.
type ColorConfig struct {
	HunkHeader string
	Match      string
	Delete     string
	Insert     string
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "diff.Context"
	case Optimal:
		return "diff.Optimal"
	case IndentHeuristic:
		return "textdiff.IndentHeuristic"
	default:
		panic("never reached")
	}
}
