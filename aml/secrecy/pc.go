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

package secrecy

// pcFrame is one contribution to the program counter level: an open
// conditional, loop body, or pending asynchronous reply.
type pcFrame struct {
	origin string
	level  Label
}

// pcStack holds the guard frames open at the current point of a method
// analysis. The current PC level is the join over all frame levels.
type pcStack struct {
	frames []pcFrame
}

func (p *pcStack) push(origin string, level Label) {
	p.frames = append(p.frames, pcFrame{origin: origin, level: level})
}

// popOrigin removes the most recent frame with the given origin. A frame
// pushed below a persistent await frame is removed without disturbing it.
func (p *pcStack) popOrigin(origin string) {
	for i := len(p.frames) - 1; i >= 0; i-- {
		if p.frames[i].origin == origin {
			p.frames = append(p.frames[:i], p.frames[i+1:]...)
			return
		}
	}
}

// release removes every frame whose origin matches the given name,
// keeping the order of the remaining frames. This is how a resolved
// future lowers the PC out of stack order.
func (p *pcStack) release(name string) {
	kept := p.frames[:0]
	for _, f := range p.frames {
		if f.origin != name {
			kept = append(kept, f)
		}
	}
	p.frames = kept
}

// eval returns the join over all frame levels, or the lattice minimum
// for an empty stack.
func (p *pcStack) eval(lattice *Lattice) Label {
	level := lattice.Min()
	for _, f := range p.frames {
		level = lattice.Join(level, f.level)
	}
	return level
}

func (p *pcStack) depth() int {
	return len(p.frames)
}
