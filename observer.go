// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package incdiff

import (
	"context"
	"log/slog"

	"znkr.io/incdiff/internal/path"
)

// Observer receives the edges of the edit graph traversed by a search. Forward is called for every
// edge explored while searching, Backward for every edge walked while recovering the edit path.
// Coordinates are relative to the full inputs.
//
// Observers are purely observational, they can't influence the result.
type Observer = path.Observer

// SlogObserver returns an observer that logs every edge at debug level.
func SlogObserver(logger *slog.Logger) Observer {
	return slogObserver{logger}
}

type slogObserver struct {
	logger *slog.Logger
}

func (o slogObserver) Forward(from, to Point) { o.log("forward", from, to) }

func (o slogObserver) Backward(from, to Point) { o.log("backward", from, to) }

func (o slogObserver) log(msg string, from, to Point) {
	if !o.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	o.logger.Debug(msg,
		slog.Group("from", slog.Int("x", from.X), slog.Int("y", from.Y)),
		slog.Group("to", slog.Int("x", to.X), slog.Int("y", to.Y)),
	)
}
