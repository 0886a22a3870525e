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

package repository

import (
	"context"

	"github.com/safeclick/academy/internal/challenge/internal/domain"
	"github.com/safeclick/academy/internal/challenge/internal/repository/dao"
)

// StreakRepository 连续天数只会通过记账修改，这里单独暴露的是超时清零和读
type StreakRepository interface {
	Get(ctx context.Context, uid int64) (domain.Streak, error)
	Bump(ctx context.Context, uid int64, day domain.Round) (domain.Streak, error)
	Reset(ctx context.Context, uid int64) (domain.Streak, error)
}

type streakRepository struct {
	dao dao.StreakDAO
}

func NewStreakRepository(d dao.StreakDAO) StreakRepository {
	return &streakRepository{dao: d}
}

func (repo *streakRepository) Get(ctx context.Context, uid int64) (domain.Streak, error) {
	s, err := repo.dao.Get(ctx, uid)
	return toDomainStreak(s), err
}

func (repo *streakRepository) Bump(ctx context.Context, uid int64, day domain.Round) (domain.Streak, error) {
	s, err := repo.dao.Bump(ctx, uid, day.Int64())
	return toDomainStreak(s), err
}

func (repo *streakRepository) Reset(ctx context.Context, uid int64) (domain.Streak, error) {
	s, err := repo.dao.Reset(ctx, uid)
	return toDomainStreak(s), err
}

func toDomainStreak(s dao.Streak) domain.Streak {
	return domain.Streak{
		Uid:           s.Uid,
		Current:       s.Current,
		Best:          s.Best,
		LastActiveDay: domain.Round(s.LastActiveDay),
	}
}
