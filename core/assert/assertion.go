// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package assert

import (
	"bytes"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

type level int

const (
	levelLog = level(iota)
	levelError
	levelFatal
)

// Assertion is the type for the start of an assertion line.
// You construct an assertion from an Output using assert.For.
type Assertion struct {
	level level
	out   *bytes.Buffer
	to    Output
}

// Critical switches this assertion from Error to Fatal.
func (a *Assertion) Critical() *Assertion {
	a.level = levelFatal
	return a
}

// Commit writes the accumulated assertion text to the output target.
func (a *Assertion) Commit() {
	switch a.level {
	case levelFatal:
		a.to.Fatal(a.out.String())
	case levelError:
		a.to.Error(a.out.String())
	default:
		a.to.Log(a.out.String())
	}
}

// Compare appends a standard-form comparison to the assertion message.
func (a *Assertion) Compare(value interface{}, op string, expect interface{}) *Assertion {
	fmt.Fprintf(a.out, "Got       %s\nExpect  %s %s", pretty(value), op, pretty(expect))
	return a
}

// Test commits the assertion if the condition does not hold.
// It returns the condition.
func (a *Assertion) Test(condition bool) bool {
	if !condition {
		a.Commit()
	}
	return condition
}

// TestDeepDiff compares value and expect with cmp.Diff, committing the
// assertion with the diff appended when they differ.
func (a *Assertion) TestDeepDiff(value, expect interface{}) bool {
	diff := cmp.Diff(expect, value)
	if diff == "" {
		return true
	}
	fmt.Fprintf(a.out, "Diff (-expect +got):\n%s", diff)
	a.Commit()
	return false
}

func pretty(value interface{}) string {
	switch value := value.(type) {
	case error, string:
		return fmt.Sprintf("`%v`", value)
	default:
		return fmt.Sprint(value)
	}
}
