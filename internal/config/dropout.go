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

// DropoutConfig bundles the regularization knobs applied during training.
// All rates are unit deactivation probabilities.
type DropoutConfig struct {
	UseDropout       bool `koanf:"use_dropout"`
	PervasiveDropout bool `koanf:"pervasive_dropout"`

	AttnDropout         float64 `koanf:"attn_dropout"          validate:"gte=0,lte=1"`
	RNNInputDropout     float64 `koanf:"rnn_input_dropout"     validate:"gte=0,lte=1"`
	InitialStateDropout float64 `koanf:"initial_state_dropout" validate:"gte=0,lte=1"`
}
