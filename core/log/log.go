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

// Package log provides context-carried leveled logging.
// A Handler is attached to a context.Context; the package level functions
// retrieve it and dispatch messages to it. A context without a handler
// silently drops all messages.
package log

import (
	"context"
	"fmt"
)

// D logs a debug message to the logging target.
func D(ctx context.Context, fmt string, args ...interface{}) { logf(ctx, Debug, fmt, args...) }

// I logs an info message to the logging target.
func I(ctx context.Context, fmt string, args ...interface{}) { logf(ctx, Info, fmt, args...) }

// W logs a warning message to the logging target.
func W(ctx context.Context, fmt string, args ...interface{}) { logf(ctx, Warning, fmt, args...) }

// E logs an error message to the logging target.
func E(ctx context.Context, fmt string, args ...interface{}) { logf(ctx, Error, fmt, args...) }

// F logs a fatal message to the logging target.
func F(ctx context.Context, fmt string, args ...interface{}) { logf(ctx, Fatal, fmt, args...) }

func logf(ctx context.Context, s Severity, f string, args ...interface{}) {
	h := GetHandler(ctx)
	if h == nil {
		return
	}
	h.Handle(&Message{Severity: s, Text: fmt.Sprintf(f, args...)})
}

// Message is a single log record.
type Message struct {
	Severity Severity // the severity of the message
	Text     string   // the fully expanded message text
}

func (m *Message) String() string {
	return fmt.Sprintf("%v: %s", m.Severity, m.Text)
}
