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

// EncoderConfig describes one input stage of the model. An encoder either
// consumes text tokens or, with Binary set, fixed-size speech feature frames.
type EncoderConfig struct {
	Name          string `koanf:"name"           validate:"required"`
	Ext           string `koanf:"ext"`
	EmbeddingSize int    `koanf:"embedding_size" validate:"gt=0"`
	Layers        int    `koanf:"layers"         validate:"gte=0"`

	// the three conv_* sequences describe the convolutional front-end,
	// one entry per convolution layer, and must have equal length
	ConvFilters    []int          `koanf:"conv_filters"`
	ConvSize       []int          `koanf:"conv_size"       validate:"dive,gt=0"`
	ConvStrides    []int          `koanf:"conv_strides"    validate:"dive,gt=0"`
	ConvActivation ConvActivation `koanf:"conv_activation" validate:"oneof=identity relu tanh sigmoid"`

	Binary             bool       `koanf:"binary"`
	MaxLen             int        `koanf:"max_len" validate:"gt=0"`
	InputLayers        []int      `koanf:"input_layers" validate:"dive,gt=0"`
	BidirProjection    bool       `koanf:"bidir_projection"`
	FinalState         FinalState `koanf:"final_state" validate:"oneof=last concat average"`
	TrainInitialStates bool       `koanf:"train_initial_states"`
	Dropout            float64    `koanf:"dropout" validate:"gte=0,lte=1"`
}

// Extension returns the data file extension of this encoder, falling back
// to the encoder name if no explicit one is configured.
func (c EncoderConfig) Extension() string {
	if len(c.Ext) != 0 {
		return c.Ext
	}

	return c.Name
}

func (c *Configuration) applyEncoderDefaults() {
	for idx := range c.Encoders {
		enc := &c.Encoders[idx]

		if enc.MaxLen == 0 {
			enc.MaxLen = defaultEncoderMaxLen
		}

		if len(enc.FinalState) == 0 {
			enc.FinalState = FinalStateLast
		}

		if len(enc.ConvActivation) == 0 {
			enc.ConvActivation = ConvActivationIdentity
		}
	}
}
