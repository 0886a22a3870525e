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

func TestRoundAt(t *testing.T) {
	testCases := []struct {
		name string
		t    time.Time
		want Round
	}{
		{
			name: "UTC 当天",
			t:    time.Date(2025, 6, 14, 10, 30, 0, 0, time.UTC),
			want: 20250614,
		},
		{
			name: "UTC 零点",
			t:    time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
			want: 20250614,
		},
		{
			name: "UTC 当天最后一纳秒",
			t:    time.Date(2025, 6, 14, 23, 59, 59, int(time.Second-1), time.UTC),
			want: 20250614,
		},
		{
			name: "其他时区按 UTC 换算",
			t:    time.Date(2025, 6, 15, 7, 0, 0, 0, time.FixedZone("UTC+8", 8*3600)),
			want: 20250614,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RoundAt(tc.t))
		})
	}
}

func TestRound_Calendar(t *testing.T) {
	testCases := []struct {
		name     string
		round    Round
		days     int
		want     Round
		wantNext time.Time
	}{
		{
			name:     "普通日期",
			round:    20250614,
			days:     1,
			want:     20250615,
			wantNext: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "跨月",
			round:    20250630,
			days:     1,
			want:     20250701,
			wantNext: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "跨年",
			round:    20251231,
			days:     1,
			want:     20260101,
			wantNext: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "闰年往回退",
			round:    20240301,
			days:     -1,
			want:     20240229,
			wantNext: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.round.AddDays(tc.days))
			assert.Equal(t, tc.wantNext, tc.round.End())
			assert.Equal(t, tc.round, RoundAt(tc.round.Start()))
		})
	}
}

func TestRound_Stable(t *testing.T) {
	start := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	r := RoundAt(start)
	for i := 0; i < 24*60; i++ {
		assert.Equal(t, r, RoundAt(start.Add(time.Duration(i)*time.Minute)))
	}
	assert.Equal(t, r.Next(), RoundAt(start.Add(24*time.Hour)))
	assert.Equal(t, r.Prev(), RoundAt(start.Add(-time.Nanosecond)))
}
