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

// LedgerEntry 经验值流水，(Uid, TaskId, Round) 唯一
type LedgerEntry struct {
	Uid     int64
	TaskId  int64
	Round   Round
	Outcome Outcome
	Points  int64
	Ctime   int64
}

// Positive 只有正向的奖励才会推进连续天数
func (e LedgerEntry) Positive() bool {
	return e.Points > 0
}

type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomeTimeout   Outcome = "timeout"
)

// ApplyResult 记账的结果。重复记账不是错误，AlreadyApplied 为 true
type ApplyResult struct {
	Applied        bool
	AlreadyApplied bool
	Total          int64
	Streak         Streak
}
