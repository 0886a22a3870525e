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
	"context"

	"github.com/safeclick/academy/internal/challenge/internal/domain"
	"github.com/safeclick/academy/internal/challenge/internal/repository"
)

// StreakTracker 正向奖励的连续天数。记账的时候由 RewardLedger 在同一个事务里推进，
// 这里给读取和单独调用的场景使用
type StreakTracker interface {
	Get(ctx context.Context, uid int64) (domain.Streak, error)
	Bump(ctx context.Context, uid int64, day domain.Round) (domain.Streak, error)
	Reset(ctx context.Context, uid int64) (domain.Streak, error)
}

type streakTracker struct {
	repo repository.StreakRepository
}

func NewStreakTracker(repo repository.StreakRepository) StreakTracker {
	return &streakTracker{repo: repo}
}

func (t *streakTracker) Get(ctx context.Context, uid int64) (domain.Streak, error) {
	return t.repo.Get(ctx, uid)
}

func (t *streakTracker) Bump(ctx context.Context, uid int64, day domain.Round) (domain.Streak, error) {
	return t.repo.Bump(ctx, uid, day)
}

func (t *streakTracker) Reset(ctx context.Context, uid int64) (domain.Streak, error) {
	return t.repo.Reset(ctx, uid)
}
