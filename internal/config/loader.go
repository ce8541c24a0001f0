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
	"os"

	"github.com/go-viper/mapstructure/v2"

	"github.com/nguyenchithien/seq2seq/internal/config/parser"
	"github.com/nguyenchithien/seq2seq/internal/seq2seq"
	"github.com/nguyenchithien/seq2seq/internal/x/errorchain"
)

const DefaultEnvPrefix = "SEQ2SEQ_"

type options struct {
	configFile string
	envPrefix  string
}

type Option func(*options)

func ConfigurationPath(path string) Option {
	return func(o *options) {
		o.configFile = path
	}
}

func EnvVarPrefix(prefix string) Option {
	return func(o *options) {
		if len(prefix) != 0 {
			o.envPrefix = prefix
		}
	}
}

func loadConfig(conf *Configuration, o options) error {
	return parser.New(
		parser.WithConfigFile(o.configFile),
		parser.WithDefaultConfigFilename("seq2seq.yaml"),
		parser.WithEnvPrefix(o.envPrefix),
		parser.WithDecodeHookFunc(mapstructure.StringToSliceHookFunc(",")),
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithConfigValidator(validateConfigFile),
	).Load(conf)
}

func validateConfigFile(configPath string) error {
	file, err := os.Open(configPath)
	if err != nil {
		return errorchain.NewWithMessagef(seq2seq.ErrConfiguration,
			"failed to open config file %s", configPath).CausedBy(err)
	}

	defer file.Close()

	return ValidateConfigSchema(file)
}
