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

package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// version can be stamped with -ldflags "-X main.version=v1.2.3"
var version string

// versionLine is what --version prints
func versionLine() string {
	info, _ := debug.ReadBuildInfo()
	return formatVersion(version, info)
}

// formatVersion renders "fnr <version> [(<revision>)] <go> <os>/<arch>".
// The module version from the build info is used when nothing was
// stamped.
func formatVersion(stamped string, info *debug.BuildInfo) string {
	v := stamped
	var rev string
	var dirty bool

	if info != nil {
		if v == "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
	}

	if v == "" {
		v = "dev"
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev != "" {
		if dirty {
			rev += "-dirty"
		}
		v += " (" + rev + ")"
	}

	return fmt.Sprintf("fnr %s %s %s/%s\n", v, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
