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

package service

import (
	"testing"

	"github.com/safeclick/academy/internal/challenge/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDailySelector_Select(t *testing.T) {
	catalog := make([]int64, 0, 20)
	for i := int64(1); i <= 20; i++ {
		catalog = append(catalog, i)
	}
	const round domain.Round = 20250614

	testCases := []struct {
		name     string
		poolSize int
		catalog  []int64
		wantLen  int
	}{
		{
			name:     "默认取三道",
			poolSize: 0,
			catalog:  catalog,
			wantLen:  3,
		},
		{
			name:     "题库比题量小",
			poolSize: 3,
			catalog:  []int64{4, 2},
			wantLen:  2,
		},
		{
			name:     "题库里有重复的题目",
			poolSize: 5,
			catalog:  []int64{1, 1, 2, 2, 3},
			wantLen:  3,
		},
		{
			name:     "空题库",
			poolSize: 3,
			wantLen:  0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewDailySelector(tc.poolSize)
			res := s.Select(round, 42, tc.catalog)
			assert.Len(t, res, tc.wantLen)
			seen := make(map[int64]bool, len(res))
			for _, id := range res {
				assert.False(t, seen[id], "重复的题目 %d", id)
				assert.Contains(t, tc.catalog, id)
				seen[id] = true
			}
			// 同样的输入，同样的顺序
			assert.Equal(t, res, s.Select(round, 42, tc.catalog))
		})
	}
}

func TestDailySelector_Varies(t *testing.T) {
	catalog := make([]int64, 0, 20)
	for i := int64(1); i <= 20; i++ {
		catalog = append(catalog, i)
	}
	s := NewDailySelector(3)
	const round domain.Round = 20250614
	base := s.Select(round, 1, catalog)

	// 与题库顺序无关
	reversed := make([]int64, len(catalog))
	for i, id := range catalog {
		reversed[len(catalog)-1-i] = id
	}
	assert.Equal(t, base, s.Select(round, 1, reversed))

	differentUser, differentDay := false, false
	for i := int64(2); i < 12; i++ {
		if !assert.ObjectsAreEqual(base, s.Select(round, i, catalog)) {
			differentUser = true
		}
		if !assert.ObjectsAreEqual(base, s.Select(round.AddDays(int(i)), 1, catalog)) {
			differentDay = true
		}
	}
	assert.True(t, differentUser)
	assert.True(t, differentDay)
}
