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
	"bufio"
	"os"
	"strings"

	"github.com/nguyenchithien/seq2seq/internal/seq2seq"
	"github.com/nguyenchithien/seq2seq/internal/x/errorchain"
)

// Special symbols, always occupying the first vocabulary slots.
const (
	PadSymbol     = "_PAD"
	GoSymbol      = "_GO"
	EOSSymbol     = "_EOS"
	UnknownSymbol = "_UNK"
)

const (
	PadID = iota
	GoID
	EOSID
	UnknownID
)

// nolint: gochecknoglobals
var startVocab = []string{PadSymbol, GoSymbol, EOSSymbol, UnknownSymbol}

// Vocabulary maps tokens to ids and back. Ids are assigned by position in
// the vocabulary file, after the reserved special symbols.
type Vocabulary struct {
	ids    map[string]int
	tokens []string
}

// Load reads a vocabulary stored one token per line.
func Load(path string) (*Vocabulary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errorchain.NewWithMessagef(seq2seq.ErrArgument,
			"vocabulary file %s not found", path).CausedBy(err)
	}

	defer file.Close()

	voc := &Vocabulary{
		ids:    make(map[string]int, len(startVocab)),
		tokens: append([]string(nil), startVocab...),
	}

	for idx, token := range voc.tokens {
		voc.ids[token] = idx
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		token := strings.TrimSpace(scanner.Text())
		if len(token) == 0 {
			continue
		}

		if _, known := voc.ids[token]; known {
			continue
		}

		voc.ids[token] = len(voc.tokens)
		voc.tokens = append(voc.tokens, token)
	}

	if err := scanner.Err(); err != nil {
		return nil, errorchain.NewWithMessagef(seq2seq.ErrInternal,
			"failed to read vocabulary from %s", path).CausedBy(err)
	}

	return voc, nil
}

// Size returns the number of known tokens, special symbols included.
func (v *Vocabulary) Size() int { return len(v.tokens) }

// ID returns the id of the given token, or UnknownID.
func (v *Vocabulary) ID(token string) int {
	if id, known := v.ids[token]; known {
		return id
	}

	return UnknownID
}

// Token returns the token for the given id.
func (v *Vocabulary) Token(id int) (string, error) {
	if id < 0 || id >= len(v.tokens) {
		return "", errorchain.NewWithMessagef(seq2seq.ErrArgument, "unknown token id %d", id)
	}

	return v.tokens[id], nil
}

// IDs converts a whitespace tokenized sentence to token ids, mapping
// unknown tokens to UnknownID.
func (v *Vocabulary) IDs(sentence string) []int {
	words := strings.Fields(sentence)
	ids := make([]int, len(words))

	for idx, word := range words {
		ids[idx] = v.ID(word)
	}

	return ids
}
