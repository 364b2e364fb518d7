// Copyright 2025 walteh LLC
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

/*
Package config holds the settings of one run and the optional defaults file
they are merged with.

	            +-------------+
	            |  Settings   |
	            |  (one run)  |
	            +------+------+
	                   | ApplyDefaults
	            +------+------+
	            |  Defaults   |
	            | (.fnr.*)    |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Validates the patterns and flags of a run before anything is walked
- Discovers and parses the defaults file
- Merges file defaults under the command line

🤝 Interfaces:
- Parser: format specific decoding, registered by file extension

🔍 Example:

	settings := &config.Settings{OldPattern: "world", NewPattern: "there", Root: "."}

	path, ok := config.Discover(settings.Root)
	if ok {
		defaults, err := config.Load(ctx, path)
		if err != nil {
			return err
		}
		settings.ApplyDefaults(defaults)
	}

	if err := settings.Validate(); err != nil {
		return err
	}

A defaults file looks like this in HCL, where env exposes the process
environment:

	hidden      = false
	ignore_case = true
	omit        = ["target", "${env.HOME}/.cache"]
	type_not    = ["md"]
*/
package config
