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

// Streak 连续活跃天数
type Streak struct {
	Uid     int64
	Current int64
	Best    int64
	// LastActiveDay 零值代表从来没有活跃过
	LastActiveDay Round
}

// Bump 记录 day 这一天有一次正向奖励
func (s Streak) Bump(day Round) Streak {
	switch {
	case s.LastActiveDay != 0 && s.LastActiveDay == day.Prev():
		s.Current++
	case s.LastActiveDay == day:
		// 同一天多次正向奖励不重复累计
	default:
		s.Current = 1
	}
	s.LastActiveDay = day
	s.Best = max(s.Best, s.Current)
	return s
}

// Reset 答错或者超时，只清零 Current
func (s Streak) Reset() Streak {
	s.Current = 0
	return s
}
