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

// HintBucket 每人每天的提示额度
type HintBucket struct {
	Uid          int64
	Tokens       int64
	LastResetDay Round
}

// Refill 当天第一次访问时补满，同一天内再调用不会有任何变化
func (b HintBucket) Refill(today Round, capacity int64) HintBucket {
	if b.LastResetDay != today {
		b.Tokens = capacity
		b.LastResetDay = today
	}
	return b
}

// Take 消耗一个额度，额度为 0 的时候返回 false
func (b HintBucket) Take() (HintBucket, bool) {
	if b.Tokens <= 0 {
		b.Tokens = 0
		return b, false
	}
	b.Tokens--
	return b, true
}
