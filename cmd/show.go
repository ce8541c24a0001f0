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

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nguyenchithien/seq2seq/cmd/flags"
	"github.com/nguyenchithien/seq2seq/cmd/show"
	"github.com/nguyenchithien/seq2seq/internal/config"
)

// nolint: gochecknoglobals
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Commands for inspecting the experiment configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(cmd.UsageString())
	},
}

// nolint: gochecknoinits
func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.PersistentFlags().StringP(flags.Config, "c", "", "Config file")
	showCmd.PersistentFlags().String(flags.EnvironmentConfigPrefix, config.DefaultEnvPrefix,
		"Prefix for environment variables to consider")
	showCmd.AddCommand(show.NewShowConfigCommand())
}
