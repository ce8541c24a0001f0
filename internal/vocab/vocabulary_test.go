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

package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyenchithien/seq2seq/internal/seq2seq"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	vocabFile := filepath.Join(t.TempDir(), "vocab.en")
	require.NoError(t, os.WriteFile(vocabFile, []byte("dog\ncat\n"), 0o600))

	voc, err := Load(vocabFile)

	require.NoError(t, err)
	assert.Equal(t, 6, voc.Size())

	// special symbols occupy the first slots
	assert.Equal(t, PadID, voc.ID(PadSymbol))
	assert.Equal(t, GoID, voc.ID(GoSymbol))
	assert.Equal(t, EOSID, voc.ID(EOSSymbol))
	assert.Equal(t, UnknownID, voc.ID(UnknownSymbol))

	assert.Equal(t, 4, voc.ID("dog"))
	assert.Equal(t, 5, voc.ID("cat"))

	token, err := voc.Token(4)
	require.NoError(t, err)
	assert.Equal(t, "dog", token)
}

func TestLoadWithNotExistingFile(t *testing.T) {
	t.Parallel()

	_, err := Load("no such file")

	require.Error(t, err)
	require.ErrorIs(t, err, seq2seq.ErrArgument)
}

func TestVocabularyIDs(t *testing.T) {
	t.Parallel()

	vocabFile := filepath.Join(t.TempDir(), "vocab.en")
	require.NoError(t, os.WriteFile(vocabFile, []byte("i\nhave\na\ndog\n"), 0o600))

	voc, err := Load(vocabFile)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 5, 6, UnknownID, 7}, voc.IDs("i have a small dog"))
}

func TestVocabularyTokenWithUnknownID(t *testing.T) {
	t.Parallel()

	vocabFile := filepath.Join(t.TempDir(), "vocab.en")
	require.NoError(t, os.WriteFile(vocabFile, []byte("dog\n"), 0o600))

	voc, err := Load(vocabFile)
	require.NoError(t, err)

	_, err = voc.Token(100)

	require.Error(t, err)
	require.ErrorIs(t, err, seq2seq.ErrArgument)
}
