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

package log

import (
	"context"
	"fmt"
	"io"
)

// Handler is the interface to an object that receives log messages.
type Handler interface {
	Handle(*Message)
}

type handler struct {
	handle func(*Message)
}

func (h handler) Handle(m *Message) { h.handle(m) }

// NewHandler returns a Handler that calls handle for each message.
func NewHandler(handle func(*Message)) Handler {
	return handler{handle: handle}
}

// Writer returns a Handler that writes messages to w, one per line.
func Writer(w io.Writer) Handler {
	return handler{handle: func(m *Message) {
		fmt.Fprintln(w, m)
	}}
}

type handlerKeyTy string

const handlerKey handlerKeyTy = "log.handlerKey"

// PutHandler returns a new context with the handler set on it.
func PutHandler(ctx context.Context, h Handler) context.Context {
	return context.WithValue(ctx, handlerKey, h)
}

// GetHandler returns the handler attached to the context, or nil.
func GetHandler(ctx context.Context) Handler {
	out, _ := ctx.Value(handlerKey).(Handler)
	return out
}
