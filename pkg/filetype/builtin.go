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

package filetype

import (
	"sort"
)

// 📚 builtin maps a category name to the base-name globs it covers
var builtin = map[string][]string{
	"c":        {"*.c", "*.h"},
	"cpp":      {"*.cpp", "*.cc", "*.cxx", "*.hpp", "*.hh", "*.hxx", "*.h"},
	"csharp":   {"*.cs"},
	"css":      {"*.css", "*.scss", "*.sass", "*.less"},
	"csv":      {"*.csv"},
	"docker":   {"Dockerfile", "*.dockerfile", "Dockerfile.*"},
	"go":       {"*.go"},
	"hcl":      {"*.hcl", "*.tf", "*.tfvars"},
	"html":     {"*.html", "*.htm"},
	"java":     {"*.java"},
	"js":       {"*.js", "*.jsx", "*.mjs", "*.cjs"},
	"json":     {"*.json", "*.jsonl"},
	"kotlin":   {"*.kt", "*.kts"},
	"lua":      {"*.lua"},
	"make":     {"Makefile", "makefile", "GNUmakefile", "*.mk", "*.mak"},
	"markdown": {"*.md", "*.markdown", "*.mdx"},
	"md":       {"*.md", "*.markdown", "*.mdx"},
	"php":      {"*.php"},
	"proto":    {"*.proto"},
	"py":       {"*.py", "*.pyi"},
	"ruby":     {"*.rb", "Gemfile", "Rakefile", "*.gemspec"},
	"rust":     {"*.rs"},
	"sh":       {"*.sh", "*.bash", "*.zsh", ".bashrc", ".zshrc", ".profile"},
	"sql":      {"*.sql"},
	"swift":    {"*.swift"},
	"toml":     {"*.toml", "Cargo.lock"},
	"ts":       {"*.ts", "*.tsx", "*.mts", "*.cts"},
	"txt":      {"*.txt"},
	"xml":      {"*.xml", "*.xsd", "*.xsl"},
	"yaml":     {"*.yaml", "*.yml"},
}

// 🔍 Names returns the sorted list of built-in category names
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
