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

// Round 一天一轮，取 UTC 日期，形如 20250614
type Round int64

// RoundAt 返回 t 所在的 UTC 日期对应的轮次
func RoundAt(t time.Time) Round {
	u := t.UTC()
	return Round(int64(u.Year())*10000 + int64(u.Month())*100 + int64(u.Day()))
}

// Start 本轮开始的 UTC 零点
func (r Round) Start() time.Time {
	y := int(r / 10000)
	m := time.Month((r / 100) % 100)
	d := int(r % 100)
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays 借助 time.Date 归一化，跨月跨年都没问题
func (r Round) AddDays(n int) Round {
	return RoundAt(r.Start().AddDate(0, 0, n))
}

func (r Round) Next() Round {
	return r.AddDays(1)
}

func (r Round) Prev() Round {
	return r.AddDays(-1)
}

// End 是下一轮的开始，也就是下一个 UTC 零点
func (r Round) End() time.Time {
	return r.Next().Start()
}

func (r Round) Contains(t time.Time) bool {
	return RoundAt(t) == r
}

func (r Round) Int64() int64 {
	return int64(r)
}
