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

package validation

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

func registerTranslations(validate *validator.Validate, trans ut.Translator) error {
	translations := []struct {
		tag         string
		translation string
		override    bool
	}{
		{tag: "gte", translation: "{0} must be {1} or greater", override: true},
		{tag: "lte", translation: "{0} must be {1} or less", override: true},
		{tag: "gt", translation: "{0} must be greater than {1}", override: true},
		{tag: "min", translation: "{0} must contain at least {1} element(s)", override: true},
	}

	for _, entry := range translations {
		err := validate.RegisterTranslation(entry.tag, trans,
			registrationFunc(entry.tag, entry.translation, entry.override),
			translateParamFunc)
		if err != nil {
			return err
		}
	}

	return nil
}

func registrationFunc(tag string, translation string, override bool) validator.RegisterTranslationsFunc {
	return func(ut ut.Translator) error {
		return ut.Add(tag, translation, override)
	}
}

func translateParamFunc(ut ut.Translator, fe validator.FieldError) string {
	t, err := ut.T(fe.Tag(), fe.Field(), fe.Param())
	if err != nil {
		return fe.Error()
	}

	return t
}
