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
package main

import (
	"fmt"

	"github.com/steelseries/golisp"
)

func init() {
	golisp.Global.BindTo(golisp.SymbolWithName("SCRIP-VERSION"), golisp.StringWithValue(version))
	golisp.MakePrimitiveFunction("go-version", "0", goVersionImpl)
}

func goVersionImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	v, err := goVersion()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(v), nil
}

// evalLisp evaluates a lisp expression and prints its value.
func evalLisp(text string) error {
	value, err := golisp.ParseAndEval(text)
	if err != nil {
		return fmt.Errorf("lisp: %w", err)
	}
	fmt.Println(golisp.String(value))
	return nil
}
