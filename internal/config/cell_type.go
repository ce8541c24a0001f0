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

// CellType selects the recurrent cell used by encoders and decoders.
type CellType string

const (
	CellTypeLSTM CellType = "LSTM"
	CellTypeGRU  CellType = "GRU"
)

// FinalState defines how the final encoder state handed to the decoder
// is derived from the per-timestep encoder states.
type FinalState string

const (
	FinalStateLast    FinalState = "last"
	FinalStateConcat  FinalState = "concat"
	FinalStateAverage FinalState = "average"
)

// ConvActivation is the activation applied after each convolution layer
// of the speech front-end. An absent value means identity.
type ConvActivation string

const (
	ConvActivationIdentity ConvActivation = "identity"
	ConvActivationRelu     ConvActivation = "relu"
	ConvActivationTanh     ConvActivation = "tanh"
	ConvActivationSigmoid  ConvActivation = "sigmoid"
)
