// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"errors"
	"strings"
	"unicode"
)

var ErrNoChoice = errors.New("无法识别的选项")

// Choice 学员的判断，只有三种取值
type Choice string

const (
	ChoicePhish   Choice = "phish"
	ChoiceLegit   Choice = "legit"
	ChoiceTimeout Choice = "timeout"
)

func (c Choice) String() string {
	return string(c)
}

var choiceSynonyms = map[string]Choice{
	"phish":      ChoicePhish,
	"phishing":   ChoicePhish,
	"scam":       ChoicePhish,
	"fake":       ChoicePhish,
	"fraud":      ChoicePhish,
	"spam":       ChoicePhish,
	"malicious":  ChoicePhish,
	"suspicious": ChoicePhish,
	"report":     ChoicePhish,

	"legit":      ChoiceLegit,
	"legitimate": ChoiceLegit,
	"safe":       ChoiceLegit,
	"real":       ChoiceLegit,
	"genuine":    ChoiceLegit,
	"ok":         ChoiceLegit,
	"okay":       ChoiceLegit,
	"trusted":    ChoiceLegit,
	"valid":      ChoiceLegit,

	"timeout":  ChoiceTimeout,
	"timedout": ChoiceTimeout,
	"expired":  ChoiceTimeout,
}

// ParseChoice 在请求入口处把自由文本收敛成 Choice。
// 先转小写、去掉所有非字母字符，再查同义词表，查不到就是 ErrNoChoice
func ParseChoice(raw string) (Choice, error) {
	key := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, raw)
	c, ok := choiceSynonyms[key]
	if !ok {
		return "", ErrNoChoice
	}
	return c, nil
}
