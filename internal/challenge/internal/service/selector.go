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
	"cmp"
	"crypto/sha256"
	"encoding/binary"
	"slices"
	"strconv"

	"github.com/safeclick/academy/internal/challenge/internal/domain"
)

const DefaultPoolSize = 3

// DailySelector 按 (轮次, 学员, 题目) 的摘要排序题库，取前 poolSize 道。
// 结果只取决于输入，同一天同一个人反复调用拿到的顺序完全一样
type DailySelector struct {
	poolSize int
}

func NewDailySelector(poolSize int) *DailySelector {
	if poolSize <= 0 {
		poolSize = DefaultPoolSize
	}
	return &DailySelector{poolSize: poolSize}
}

func (s *DailySelector) PoolSize() int {
	return s.poolSize
}

func (s *DailySelector) Select(round domain.Round, uid int64, catalog []int64) []int64 {
	type ranked struct {
		id     int64
		digest uint64
	}
	seen := make(map[int64]struct{}, len(catalog))
	candidates := make([]ranked, 0, len(catalog))
	for _, id := range catalog {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		candidates = append(candidates, ranked{id: id, digest: digest(round, uid, id)})
	}
	slices.SortFunc(candidates, func(a, b ranked) int {
		if c := cmp.Compare(a.digest, b.digest); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	n := min(s.poolSize, len(candidates))
	res := make([]int64, 0, n)
	for _, c := range candidates[:n] {
		res = append(res, c.id)
	}
	return res
}

func digest(round domain.Round, uid, taskId int64) uint64 {
	key := strconv.FormatInt(round.Int64(), 10) + ":" +
		strconv.FormatInt(uid, 10) + ":" +
		strconv.FormatInt(taskId, 10)
	sum := sha256.Sum256([]byte(key))
	return binary.BigEndian.Uint64(sum[:8])
}
