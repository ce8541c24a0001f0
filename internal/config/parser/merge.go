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
	"reflect"
	"strconv"

	"github.com/nguyenchithien/seq2seq/internal/seq2seq"
	"github.com/nguyenchithien/seq2seq/internal/x/errorchain"
)

func merge(key string, dest, src any) (any, error) {
	if dest == nil {
		return cleanSuffix(src), nil
	}

	vDst := reflect.ValueOf(dest)
	vSrc := reflect.ValueOf(src)

	// nolint: exhaustive
	switch vDst.Kind() {
	case reflect.Map:
		if vSrc.Type() != vDst.Type() {
			return nil, errorchain.NewWithMessagef(seq2seq.ErrConfiguration,
				"cannot override '%s': %s value given, %s expected", key, vSrc.Type(), vDst.Type())
		}

		// nolint: forcetypeassert
		return mergeMaps(key, dest.(map[string]any), src.(map[string]any))
	case reflect.Slice:
		if vSrc.Type() != vDst.Type() {
			return nil, errorchain.NewWithMessagef(seq2seq.ErrConfiguration,
				"cannot override '%s': %s value given, %s expected", key, vSrc.Type(), vDst.Type())
		}

		// nolint: forcetypeassert
		return mergeSlices(key, dest.([]any), src.([]any))
	default:
		// any other (primitive) type
		// overriding
		return src, nil
	}
}

func mergeSlices(key string, dest, src []any) ([]any, error) {
	if len(dest) < len(src) {
		oldDest := dest
		dest = make([]any, len(src))

		copy(dest, oldDest)
	}

	for i, v := range src {
		avail := dest[i]
		if avail == nil {
			dest[i] = v
		} else if v != nil {
			merged, err := merge(key+"."+strconv.Itoa(i), avail, v)
			if err != nil {
				return nil, err
			}

			dest[i] = merged
		}
	}

	return dest, nil
}

func mergeMaps(key string, dest, src map[string]any) (map[string]any, error) {
	for k, v := range src {
		path := k
		if len(key) != 0 {
			path = key + "." + k
		}

		old := dest[k]
		if old == nil {
			dest[k] = v
		} else {
			merged, err := merge(path, old, v)
			if err != nil {
				return nil, err
			}

			dest[k] = merged
		}
	}

	return dest, nil
}
