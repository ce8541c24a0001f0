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

package config

import (
	"github.com/rs/zerolog"
)

const (
	defaultBatchSize          = 64
	defaultCellSize           = 256
	defaultAttnSize           = 256
	defaultStepsPerCheckpoint = 1000
	defaultStepsPerEval       = 2000

	// speech encoders consume feature frames, decoders emit characters,
	// hence the very different sequence length bounds
	defaultEncoderMaxLen = 1500
	defaultDecoderMaxLen = 100
)

// nolint: gochecknoglobals
var defaultConfig = Configuration{
	TrainPrefix:        "train",
	DevPrefix:          "dev",
	BatchSize:          defaultBatchSize,
	StepsPerCheckpoint: defaultStepsPerCheckpoint,
	StepsPerEval:       defaultStepsPerEval,
	ScoreFunction:      "corpus_scores",
	CellSize:           defaultCellSize,
	AttnSize:           defaultAttnSize,
	CellType:           CellTypeLSTM,
	Log: LoggingConfig{
		Level:  zerolog.InfoLevel,
		Format: LogTextFormat,
	},
}
