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
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/nguyenchithien/seq2seq/internal/config"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc   string
		conf config.LoggingConfig
	}{
		{uc: "text format", conf: config.LoggingConfig{Format: config.LogTextFormat, Level: zerolog.DebugLevel}},
		{uc: "json format", conf: config.LoggingConfig{Format: config.LogJSONFormat, Level: zerolog.ErrorLevel}},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			logger := NewLogger(tc.conf)

			assert.Equal(t, tc.conf.Level, logger.GetLevel())
		})
	}
}
