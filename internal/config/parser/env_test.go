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

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKoanfFromEnv(t *testing.T) {
	t.Setenv("ENVTEST_BATCH__SIZE", "64")
	t.Setenv("ENVTEST_DROPOUT_ATTN__DROPOUT", "0.2")
	t.Setenv("ENVTEST_ENCODERS_0_NAME", "speech.fr")
	t.Setenv("ENVTEST_ENCODERS_0_BINARY", "true")
	t.Setenv("ENVTEST_ENCODERS_1_NAME", "fr")

	konf, err := koanfFromEnv("ENVTEST_")

	require.NoError(t, err)

	// double underscore maps to a literal underscore, single to hierarchy
	assert.Equal(t, 64, konf.Get("batch_size"))
	assert.InDelta(t, 0.2, konf.Get("dropout.attn_dropout"), 0.0001)

	// numeric segments become slice indexes
	encoders, ok := konf.Get("encoders").([]any)
	require.True(t, ok)
	require.Len(t, encoders, 2)

	encoder0, ok := encoders[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "speech.fr", encoder0["name"])
	assert.Equal(t, true, encoder0["binary"])

	encoder1, ok := encoders[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "fr", encoder1["name"])
}

func TestKoanfFromEnvIgnoresOtherVariables(t *testing.T) {
	t.Setenv("UNRELATED_BATCH__SIZE", "128")

	konf, err := koanfFromEnv("ENVTEST2_")

	require.NoError(t, err)
	assert.Nil(t, konf.Get("batch_size"))
}
