// Copyright 2024 The joinreorder Authors.
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

package sql

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Context threads cancellation and a structured logger through the
// planning phase, the way every Node and session operation in the
// surrounding engine receives a *Context as its first argument.
type Context struct {
	context.Context
	logger *logrus.Entry
}

// NewContext wraps ctx with a default logger.
func NewContext(ctx context.Context) *Context {
	return &Context{
		Context: ctx,
		logger:  logrus.NewEntry(logrus.StandardLogger()),
	}
}

// NewEmptyContext returns a Context suitable for tests and standalone
// planning calls with no caller-supplied context.Context.
func NewEmptyContext() *Context {
	return NewContext(context.Background())
}

// GetLogger returns the context's logger.
func (c *Context) GetLogger() *logrus.Entry {
	return c.logger
}

// SetLogger replaces the context's logger.
func (c *Context) SetLogger(entry *logrus.Entry) {
	c.logger = entry
}

// WithLogFields returns a derived logger with the given fields attached,
// without mutating c.
func (c *Context) WithLogFields(fields logrus.Fields) *logrus.Entry {
	return c.logger.WithFields(fields)
}
