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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyenchithien/seq2seq/internal/seq2seq"
)

func TestNewConfigurationFromExperimentDocument(t *testing.T) {
	conf, err := NewConfiguration(ConfigurationPath("testdata/config.yaml"))

	require.NoError(t, err)

	assert.Equal(t, "AST-BTEC-speech-fr-en", conf.Label)
	assert.Equal(t, "data/BTEC", conf.DataDir)
	assert.Equal(t, "models/AST", conf.ModelDir)
	assert.Equal(t, 64, conf.BatchSize)
	assert.Equal(t, CellTypeLSTM, conf.CellType)
	assert.Equal(t, 256, conf.CellSize)
	assert.Equal(t, 256, conf.AttnSize)
	assert.Nil(t, conf.WeightScale)
	assert.Equal(t, 1000, conf.StepsPerCheckpoint)
	assert.Equal(t, 2000, conf.StepsPerEval)
	assert.Equal(t, 100000, conf.MaxSteps)
	assert.Equal(t, "corpus_scores", conf.ScoreFunction)

	require.Len(t, conf.Encoders, 1)
	encoder := conf.Encoders[0]
	assert.Equal(t, "speech.fr", encoder.Name)
	assert.Equal(t, "feats41", encoder.Ext)
	assert.Equal(t, []int{16, 16}, encoder.ConvFilters)
	assert.Equal(t, []int{3, 3}, encoder.ConvSize)
	assert.Equal(t, []int{2, 2}, encoder.ConvStrides)
	assert.Equal(t, ConvActivationIdentity, encoder.ConvActivation)
	assert.Equal(t, FinalStateAverage, encoder.FinalState)
	assert.True(t, encoder.Binary)
	assert.InDelta(t, 0.2, encoder.Dropout, 0.0001)

	require.Len(t, conf.Decoders, 1)
	decoder := conf.Decoders[0]
	assert.Equal(t, "char.en", decoder.Name)
	assert.Equal(t, 100, decoder.MaxLen)
	assert.True(t, decoder.CharacterLevel)

	assert.True(t, conf.Dropout.UseDropout)
	assert.False(t, conf.Dropout.PervasiveDropout)
	assert.InDelta(t, 0.2, conf.Dropout.AttnDropout, 0.0001)

	// ambient defaults, not part of the document
	assert.Equal(t, zerolog.InfoLevel, conf.Log.Level)
	assert.Equal(t, LogTextFormat, conf.Log.Format)
}

func TestNewConfigurationWithoutDocument(t *testing.T) {
	// no document means no encoders and no decoders, which is not a runnable experiment
	_, err := NewConfiguration()

	require.Error(t, err)
	require.ErrorIs(t, err, seq2seq.ErrValidation)
}

func TestNewConfigurationWithNotExistingDocument(t *testing.T) {
	_, err := NewConfiguration(ConfigurationPath("no such file"))

	require.Error(t, err)
}

func TestNewConfigurationFromInvalidDocument(t *testing.T) {
	minimalEncoder := `
encoders:
  - name: speech.fr
    embedding_size: 41
decoders:
  - name: char.en
    embedding_size: 64
`

	for _, tc := range []struct {
		uc     string
		config string
		assert func(t *testing.T, err error)
	}{
		{
			uc: "unknown top level key",
			config: `
data_dir: data
model_dir: models
no_such_setting: true` + minimalEncoder,
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, seq2seq.ErrConfiguration)
			},
		},
		{
			uc: "missing data_dir",
			config: `
model_dir: models` + minimalEncoder,
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, seq2seq.ErrConfiguration)
				assert.Contains(t, err.Error(), "data_dir")
			},
		},
		{
			uc: "type mismatch for batch_size",
			config: `
data_dir: data
model_dir: models
batch_size: "not a number"` + minimalEncoder,
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, seq2seq.ErrConfiguration)
			},
		},
		{
			uc: "negative batch_size",
			config: `
data_dir: data
model_dir: models
batch_size: -1` + minimalEncoder,
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, seq2seq.ErrConfiguration)
			},
		},
		{
			uc: "unknown cell_type",
			config: `
data_dir: data
model_dir: models
cell_type: FOO` + minimalEncoder,
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, seq2seq.ErrConfiguration)
			},
		},
		{
			uc: "attn_dropout out of range",
			config: `
data_dir: data
model_dir: models
dropout:
  attn_dropout: 1.5` + minimalEncoder,
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, seq2seq.ErrConfiguration)
			},
		},
		{
			uc: "no decoders",
			config: `
data_dir: data
model_dir: models
encoders:
  - name: speech.fr
    embedding_size: 41
decoders: []`,
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, seq2seq.ErrConfiguration)
			},
		},
		{
			uc: "conv sequences of different length",
			config: `
data_dir: data
model_dir: models
encoders:
  - name: speech.fr
    embedding_size: 41
    conv_filters: [16, 16]
    conv_size: [3, 3]
    conv_strides: [2]
decoders:
  - name: char.en
    embedding_size: 64`,
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, seq2seq.ErrValidation)
				assert.Contains(t, err.Error(), "conv_strides")
			},
		},
		{
			uc: "max_train_size smaller than batch_size",
			config: `
data_dir: data
model_dir: models
max_train_size: 32
batch_size: 64` + minimalEncoder,
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, seq2seq.ErrValidation)
				assert.Contains(t, err.Error(), "max_train_size")
			},
		},
		{
			uc: "steps_per_checkpoint beyond max_steps",
			config: `
data_dir: data
model_dir: models
steps_per_checkpoint: 5000
max_steps: 1000` + minimalEncoder,
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, seq2seq.ErrValidation)
				assert.Contains(t, err.Error(), "steps_per_checkpoint")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			configFile := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tc.config), 0o600))

			_, err := NewConfiguration(ConfigurationPath(configFile))

			require.Error(t, err)
			tc.assert(t, err)
		})
	}
}

func TestNewConfigurationWithEnvOverrides(t *testing.T) {
	t.Setenv("SEQ2SEQ_BATCH__SIZE", "128")
	t.Setenv("SEQ2SEQ_MAX__TRAIN__SIZE", "2000000")
	t.Setenv("SEQ2SEQ_ENCODERS_0_DROPOUT", "0.5")

	conf, err := NewConfiguration(ConfigurationPath("testdata/config.yaml"))

	require.NoError(t, err)
	assert.Equal(t, 128, conf.BatchSize)
	assert.Equal(t, 2000000, conf.MaxTrainSize)
	assert.InDelta(t, 0.5, conf.Encoders[0].Dropout, 0.0001)
}

func TestConfigurationDumpRoundTrip(t *testing.T) {
	conf, err := NewConfiguration(ConfigurationPath("testdata/config.yaml"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, conf.Dump(&buf))

	dumpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(dumpFile, buf.Bytes(), 0o600))

	reloaded, err := NewConfiguration(ConfigurationPath(dumpFile))

	require.NoError(t, err)
	assert.Equal(t, conf, reloaded)
}

func TestConfigurationWeightScaleIsPreserved(t *testing.T) {
	config := `
data_dir: data
model_dir: models
weight_scale: 0.1
encoders:
  - name: speech.fr
    embedding_size: 41
decoders:
  - name: char.en
    embedding_size: 64`

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(config), 0o600))

	conf, err := NewConfiguration(ConfigurationPath(configFile))

	require.NoError(t, err)
	require.NotNil(t, conf.WeightScale)
	assert.InDelta(t, 0.1, *conf.WeightScale, 0.0001)
}
