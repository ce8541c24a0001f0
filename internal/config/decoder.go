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

// DecoderConfig describes one output stage of the model.
type DecoderConfig struct {
	Name          string `koanf:"name"           validate:"required"`
	Ext           string `koanf:"ext"`
	EmbeddingSize int    `koanf:"embedding_size" validate:"gt=0"`
	MaxLen        int    `koanf:"max_len"        validate:"gt=0"`

	ConditionalRNN  bool `koanf:"conditional_rnn"`
	PredMaxoutLayer bool `koanf:"pred_maxout_layer"`
	UsePreviousWord bool `koanf:"use_previous_word"`
	PredEmbedProj   bool `koanf:"pred_embed_proj"`
	CharacterLevel  bool `koanf:"character_level"`
}

// Extension returns the data file extension of this decoder, falling back
// to the decoder name if no explicit one is configured.
func (c DecoderConfig) Extension() string {
	if len(c.Ext) != 0 {
		return c.Ext
	}

	return c.Name
}

func (c *Configuration) applyDecoderDefaults() {
	for idx := range c.Decoders {
		dec := &c.Decoders[idx]

		if dec.MaxLen == 0 {
			dec.MaxLen = defaultDecoderMaxLen
		}
	}
}
