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

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/nguyenchithien/seq2seq/internal/seq2seq"
	"github.com/nguyenchithien/seq2seq/internal/validation"
	"github.com/nguyenchithien/seq2seq/internal/x/errorchain"
)

const (
	tagConvLengths        = "eqlen_conv"
	tagTrainSizeBatch     = "gte_batch_size"
	tagCheckpointMaxSteps = "lte_max_steps"
)

// Validate runs all field level and cross field checks and reports every
// violation found, not just the first one.
func (c Configuration) Validate() error {
	vld, err := newValidator()
	if err != nil {
		return errorchain.NewWithMessage(seq2seq.ErrInternal,
			"failed to create validator").CausedBy(err)
	}

	if err := vld.ValidateStruct(c); err != nil {
		return errorchain.NewWithMessage(seq2seq.ErrValidation,
			"invalid configuration").CausedBy(err)
	}

	return nil
}

func newValidator() (*validation.Validator, error) {
	return validation.NewValidator(
		validation.WithStructValidator(crossFieldValidator{}),
		validation.WithErrorTranslator(crossFieldTranslation{
			tag:      tagConvLengths,
			template: "{0} must have the same length as 'conv_filters'",
		}),
		validation.WithErrorTranslator(crossFieldTranslation{
			tag:      tagTrainSizeBatch,
			template: "{0} must not be smaller than 'batch_size'",
		}),
		validation.WithErrorTranslator(crossFieldTranslation{
			tag:      tagCheckpointMaxSteps,
			template: "{0} must not exceed 'max_steps'",
		}),
	)
}

type crossFieldValidator struct{}

func (crossFieldValidator) Types() []any { return []any{Configuration{}} }

func (crossFieldValidator) Validate(sl validator.StructLevel) {
	conf, ok := sl.Current().Interface().(Configuration)
	if !ok {
		return
	}

	for idx, enc := range conf.Encoders {
		if len(enc.ConvFilters) != len(enc.ConvSize) || len(enc.ConvFilters) != len(enc.ConvStrides) {
			sl.ReportError(enc.ConvStrides,
				fmt.Sprintf("encoders[%d].conv_strides", idx),
				fmt.Sprintf("Encoders[%d].ConvStrides", idx),
				tagConvLengths, "")
		}
	}

	if conf.MaxTrainSize > 0 && conf.MaxTrainSize < conf.BatchSize {
		sl.ReportError(conf.MaxTrainSize,
			"max_train_size", "MaxTrainSize", tagTrainSizeBatch, "")
	}

	if conf.MaxSteps > 0 && conf.StepsPerCheckpoint > conf.MaxSteps {
		sl.ReportError(conf.StepsPerCheckpoint,
			"steps_per_checkpoint", "StepsPerCheckpoint", tagCheckpointMaxSteps, "")
	}
}

type crossFieldTranslation struct {
	tag      string
	template string
}

func (t crossFieldTranslation) Tag() string { return t.tag }

func (t crossFieldTranslation) MessageTemplate() string { return t.template }

func (t crossFieldTranslation) Translate(trans ut.Translator, fe validator.FieldError) string {
	translated, err := trans.T(fe.Tag(), fe.Field())
	if err != nil {
		return fe.Error()
	}

	return translated
}
