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

package text_test

import (
	"fmt"

	"github.com/walteh/fnr/pkg/text"
)

func ExampleSimpleTextReplacer_ReplaceLine() {
	replacer := text.NewSimpleTextReplacer(text.ReplacementRule{
		FromText:   "world",
		ToText:     "there",
		IgnoreCase: true,
	})

	line, count := replacer.ReplaceLine("Hello World, hello WORLD")
	fmt.Println(line)
	fmt.Println(count)

	// Output:
	// Hello there, hello there
	// 2
}

func ExampleSimpleTextReplacer_ReplaceContentLine() {
	replacer := text.NewSimpleTextReplacer(text.ReplacementRule{FromText: "world", ToText: "new"})

	result, err := replacer.ReplaceContentLine([]byte("world\nworld\n"), 2)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Modified: %q\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)

	_, err = replacer.ReplaceContentLine([]byte("world\n"), 3)
	fmt.Printf("Error: %v\n", err)

	// Output:
	// Modified: "world\nnew\n"
	// Changes: 1
	// Error: line out of range: line 3, file has 1 lines
}
