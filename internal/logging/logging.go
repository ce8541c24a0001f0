// Copyright 2026 Nguyen Chi Thien
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
//
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/nguyenchithien/seq2seq/internal/config"
)

// NewLogger creates a logger for the given configuration. Text format is
// meant for interactive use, json for log collection during long trainings.
// Logs go to stderr, so commands dumping documents keep stdout clean.
func NewLogger(conf config.LoggingConfig) zerolog.Logger {
	if conf.Format == config.LogTextFormat {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(conf.Level)
	}

	return zerolog.New(os.Stderr).Level(conf.Level).With().
		Timestamp().
		Logger()
}
