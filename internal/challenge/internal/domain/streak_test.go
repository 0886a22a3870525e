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
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStreak_Bump(t *testing.T) {
	const d Round = 20250614
	testCases := []struct {
		name   string
		before Streak
		day    Round
		want   Streak
	}{
		{
			name:   "第一次活跃",
			before: Streak{},
			day:    d,
			want:   Streak{Current: 1, Best: 1, LastActiveDay: d},
		},
		{
			name:   "隔天连续",
			before: Streak{Current: 4, Best: 4, LastActiveDay: d},
			day:    d.Next(),
			want:   Streak{Current: 5, Best: 5, LastActiveDay: d.Next()},
		},
		{
			name:   "同一天不重复累计",
			before: Streak{Current: 4, Best: 6, LastActiveDay: d},
			day:    d,
			want:   Streak{Current: 4, Best: 6, LastActiveDay: d},
		},
		{
			name:   "断了两天从 1 开始",
			before: Streak{Current: 4, Best: 6, LastActiveDay: d},
			day:    d.AddDays(3),
			want:   Streak{Current: 1, Best: 6, LastActiveDay: d.AddDays(3)},
		},
		{
			name:   "清零之后同一天仍然不变",
			before: Streak{Current: 0, Best: 3, LastActiveDay: d},
			day:    d,
			want:   Streak{Current: 0, Best: 3, LastActiveDay: d},
		},
		{
			name:   "跨月连续",
			before: Streak{Current: 2, Best: 2, LastActiveDay: 20250630},
			day:    20250701,
			want:   Streak{Current: 3, Best: 3, LastActiveDay: 20250701},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.before.Bump(tc.day)
			assert.Equal(t, tc.want, got)
			assert.LessOrEqual(t, got.Current, got.Best)
		})
	}
}

func TestStreak_Reset(t *testing.T) {
	s := Streak{Uid: 1, Current: 5, Best: 7, LastActiveDay: 20250614}
	assert.Equal(t, Streak{Uid: 1, Current: 0, Best: 7, LastActiveDay: 20250614}, s.Reset())
}

func TestHintBucket(t *testing.T) {
	const today Round = 20250614
	b := HintBucket{Tokens: 0, LastResetDay: today.Prev()}.Refill(today, 3)
	assert.Equal(t, int64(3), b.Tokens)

	var ok bool
	for i := 2; i >= 0; i-- {
		b, ok = b.Take()
		assert.True(t, ok)
		assert.Equal(t, int64(i), b.Tokens)
	}
	b, ok = b.Take()
	assert.False(t, ok)
	assert.Equal(t, int64(0), b.Tokens)

	// 同一天再补不会补满
	b = b.Refill(today, 3)
	assert.Equal(t, int64(0), b.Tokens)
	b = b.Refill(today.Next(), 3)
	assert.Equal(t, int64(3), b.Tokens)
}

func TestSession_LockedIn(t *testing.T) {
	const today Round = 20250614
	start := today.Start()
	now := start.Add(12 * time.Hour)
	testCases := []struct {
		name string
		sess Session
		want bool
	}{
		{
			name: "今天提交",
			sess: Session{Status: SessionStatusSubmitted, SubmittedAt: now.Add(-time.Second)},
			want: true,
		},
		{
			name: "昨天提交",
			sess: Session{Status: SessionStatusSubmitted, SubmittedAt: start.Add(-time.Second)},
			want: false,
		},
		{
			name: "今天超时",
			sess: Session{Status: SessionStatusExpired, DeadlineAt: now.Add(-time.Second)},
			want: true,
		},
		{
			name: "打开着但是已经过了截止时间",
			sess: Session{Status: SessionStatusOpen, DeadlineAt: now.Add(-time.Second)},
			want: true,
		},
		{
			name: "打开着还没到截止时间",
			sess: Session{Status: SessionStatusOpen, DeadlineAt: now.Add(time.Second)},
			want: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.sess.LockedIn(today, now))
		})
	}
}
