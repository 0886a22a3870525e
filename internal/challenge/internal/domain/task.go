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

import "time"

// Task 每日挑战的题目，由内容管理维护，这里只读
type Task struct {
	Id      int64
	Channel string
	Title   string
	Body    string
	// Truth 明确的标准答案，为空的时候退化到 IsPhish
	Truth   Choice
	IsPhish bool
	// Rationale 判题之后展示给学员的解析
	Rationale     string
	TimeLimitSec  int64
	PointsCorrect int64
	PointsWrong   int64
	Clues         []Clue
	Status        TaskStatus
	Utime         int64
}

// Answer 标准答案，Truth 字段优先
func (t Task) Answer() Choice {
	if t.Truth == ChoicePhish || t.Truth == ChoiceLegit {
		return t.Truth
	}
	if t.IsPhish {
		return ChoicePhish
	}
	return ChoiceLegit
}

func (t Task) TimeLimit() time.Duration {
	return time.Duration(t.TimeLimitSec) * time.Second
}

func (t Task) Icon() string {
	switch t.Channel {
	case "email":
		return "mail"
	case "sms":
		return "message"
	case "web":
		return "globe"
	case "voice":
		return "phone"
	case "social":
		return "users"
	default:
		return "shield"
	}
}

// Clue 提示，一般是一个可疑的特征，例如发件人域名不对
type Clue struct {
	Label       string `json:"label"`
	Explanation string `json:"explanation"`
}

type TaskStatus uint8

func (s TaskStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	TaskStatusUnknown TaskStatus = iota
	TaskStatusUnpublished
	TaskStatusPublished
)
