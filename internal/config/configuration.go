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

// Configuration describes a single training/inference experiment of the
// speech translation model. It is constructed once at process start and
// passed around by value, no part of the system mutates it afterwards.
type Configuration struct {
	Label       string `koanf:"label"`
	DataDir     string `koanf:"data_dir"     validate:"required"`
	ModelDir    string `koanf:"model_dir"    validate:"required"`
	TrainPrefix string `koanf:"train_prefix" validate:"required"`
	DevPrefix   string `koanf:"dev_prefix"   validate:"required"`

	MaxTrainSize int      `koanf:"max_train_size" validate:"gte=0"`
	BatchSize    int      `koanf:"batch_size"     validate:"gt=0"`
	WeightScale  *float64 `koanf:"weight_scale"   validate:"omitempty,gt=0"`

	StepsPerCheckpoint int    `koanf:"steps_per_checkpoint" validate:"gt=0"`
	StepsPerEval       int    `koanf:"steps_per_eval"       validate:"gt=0"`
	MaxSteps           int    `koanf:"max_steps"            validate:"gte=0"`
	ScoreFunction      string `koanf:"score_function"       validate:"required"`

	CellSize int      `koanf:"cell_size" validate:"gt=0"`
	AttnSize int      `koanf:"attn_size" validate:"gt=0"`
	CellType CellType `koanf:"cell_type" validate:"oneof=LSTM GRU"`

	// order of the entries defines the input/output order of the model
	Encoders []EncoderConfig `koanf:"encoders" validate:"min=1,dive"`
	Decoders []DecoderConfig `koanf:"decoders" validate:"min=1,dive"`

	Dropout DropoutConfig `koanf:"dropout"`
	Log     LoggingConfig `koanf:"log"`
}

func NewConfiguration(opts ...Option) (Configuration, error) {
	// copy defaults
	result := defaultConfig

	o := options{envPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	if err := loadConfig(&result, o); err != nil {
		return Configuration{}, err
	}

	result.applyEncoderDefaults()
	result.applyDecoderDefaults()

	if err := result.Validate(); err != nil {
		return Configuration{}, err
	}

	return result, nil
}
