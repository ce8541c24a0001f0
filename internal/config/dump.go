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
	"io"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/nguyenchithien/seq2seq/internal/seq2seq"
	"github.com/nguyenchithien/seq2seq/internal/x/errorchain"
)

// Dump serializes the configuration back to YAML. Loading the resulting
// document again yields an equal Configuration.
func (c Configuration) Dump(out io.Writer) error {
	parser := koanf.New(".")

	if err := parser.Load(structs.Provider(c, "koanf"), nil); err != nil {
		return errorchain.NewWithMessage(seq2seq.ErrInternal,
			"failed to convert configuration").CausedBy(err)
	}

	raw, err := yaml.Parser().Marshal(parser.Raw())
	if err != nil {
		return errorchain.NewWithMessage(seq2seq.ErrInternal,
			"failed to marshal configuration").CausedBy(err)
	}

	if _, err := out.Write(raw); err != nil {
		return errorchain.NewWithMessage(seq2seq.ErrInternal,
			"failed to write configuration").CausedBy(err)
	}

	return nil
}
