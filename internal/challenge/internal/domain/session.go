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

// Session 学员对某一道题的一次限时作答
type Session struct {
	Id         int64
	Uid        int64
	TaskId     int64
	Channel    string
	Round      Round
	StartedAt  time.Time
	DeadlineAt time.Time
	// SubmittedAt 零值代表还没有提交
	SubmittedAt time.Time
	Choice      Choice
	Correct     bool
	Points      int64
	Decision    time.Duration
	Status      SessionStatus
}

func (s Session) Terminal() bool {
	return s.Status == SessionStatusSubmitted || s.Status == SessionStatusExpired
}

// Overdue 用服务端时间判断，不能信任客户端时间
func (s Session) Overdue(now time.Time) bool {
	return now.After(s.DeadlineAt)
}

// LockedIn 在 round 这一天里，这个会话是否让题目处于锁定状态
func (s Session) LockedIn(round Round, now time.Time) bool {
	switch s.Status {
	case SessionStatusSubmitted:
		return round.Contains(s.SubmittedAt)
	case SessionStatusExpired:
		return round.Contains(s.DeadlineAt)
	case SessionStatusOpen:
		return s.Overdue(now) && round.Contains(s.DeadlineAt)
	default:
		return false
	}
}

type SessionStatus uint8

func (s SessionStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	// SessionStatusUnopened 没有会话
	SessionStatusUnopened SessionStatus = iota
	SessionStatusOpen
	// SessionStatusSubmitted 和 SessionStatusExpired 都是终态
	SessionStatusSubmitted
	SessionStatusExpired
)

// Grade 判题结果
type Grade struct {
	Choice  Choice
	Correct bool
	Points  int64
}

func (g Grade) Outcome() Outcome {
	switch {
	case g.Choice == ChoiceTimeout:
		return OutcomeTimeout
	case g.Correct:
		return OutcomeCorrect
	default:
		return OutcomeIncorrect
	}
}
