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
	"fmt"
	"path/filepath"
)

// Files lists the data files of an experiment, derived from the configured
// directories, prefixes and the encoder/decoder extensions. The slices are
// ordered like the encoders/decoders they belong to.
type Files struct {
	SourceTrain []string
	TargetTrain []string
	SourceDev   []string
	TargetDev   []string
	SourceVocab []string
	TargetVocab []string
	Checkpoints string
}

// Filenames resolves the data file layout of the experiment. Train and dev
// corpora live under <data_dir>/<prefix>.<ext>, vocabularies under
// <data_dir>/vocab.<ext>, checkpoints under the model directory.
func (c Configuration) Filenames() Files {
	trainPath := filepath.Join(c.DataDir, c.TrainPrefix)
	devPath := filepath.Join(c.DataDir, c.DevPrefix)

	files := Files{
		Checkpoints: filepath.Join(c.ModelDir, "checkpoints"),
	}

	for _, enc := range c.Encoders {
		ext := enc.Extension()

		files.SourceTrain = append(files.SourceTrain, fmt.Sprintf("%s.%s", trainPath, ext))
		files.SourceDev = append(files.SourceDev, fmt.Sprintf("%s.%s", devPath, ext))
		files.SourceVocab = append(files.SourceVocab, filepath.Join(c.DataDir, "vocab."+ext))
	}

	for _, dec := range c.Decoders {
		ext := dec.Extension()

		files.TargetTrain = append(files.TargetTrain, fmt.Sprintf("%s.%s", trainPath, ext))
		files.TargetDev = append(files.TargetDev, fmt.Sprintf("%s.%s", devPath, ext))
		files.TargetVocab = append(files.TargetVocab, filepath.Join(c.DataDir, "vocab."+ext))
	}

	return files
}
