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

package show

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyenchithien/seq2seq/cmd/flags"
	"github.com/nguyenchithien/seq2seq/internal/config"
	"github.com/nguyenchithien/seq2seq/internal/logging"
)

// NewShowConfigCommand represents the "show config" command. It prints the
// fully resolved configuration, defaults and environment overrides applied.
func NewShowConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   "Shows the resolved experiment configuration",
		Example: "seq2seq show config -c myexperiment.yaml",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := showConfig(cmd); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}
}

func showConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString(flags.Config)
	if len(configPath) == 0 {
		return ErrNoConfigFile
	}

	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)

	conf, err := config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
	)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(conf.Log)
	logger.Info().Str("_config", configPath).Msg("Configuration loaded")

	return conf.Dump(cmd.OutOrStdout())
}
