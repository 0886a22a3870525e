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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseChoice(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    Choice
		wantErr error
	}{
		{name: "标准写法", raw: "phish", want: ChoicePhish},
		{name: "大小写和标点", raw: "  Phishing!! ", want: ChoicePhish},
		{name: "同义词 scam", raw: "SCAM", want: ChoicePhish},
		{name: "legit", raw: "legit", want: ChoiceLegit},
		{name: "带连字符", raw: "Legit-imate", want: ChoiceLegit},
		{name: "safe", raw: "safe.", want: ChoiceLegit},
		{name: "timeout", raw: "timeout", want: ChoiceTimeout},
		{name: "timed out", raw: "Timed out", want: ChoiceTimeout},
		{name: "空字符串", raw: "", wantErr: ErrNoChoice},
		{name: "只有标点", raw: "?!", wantErr: ErrNoChoice},
		{name: "不在表里", raw: "maybe", wantErr: ErrNoChoice},
		{name: "不做模糊匹配", raw: "phish or legit", wantErr: ErrNoChoice},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseChoice(tc.raw)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, c)
		})
	}
}

func TestTask_Answer(t *testing.T) {
	testCases := []struct {
		name string
		task Task
		want Choice
	}{
		{name: "truth 优先", task: Task{Truth: ChoiceLegit, IsPhish: true}, want: ChoiceLegit},
		{name: "truth 为空用 IsPhish", task: Task{IsPhish: true}, want: ChoicePhish},
		{name: "truth 非法用 IsPhish", task: Task{Truth: ChoiceTimeout}, want: ChoiceLegit},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.task.Answer())
		})
	}
}
