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

// RewardLedger 只追加的经验值账本。(uid, taskId, round) 是唯一的幂等边界，
// 重复记账返回 AlreadyApplied 而不是错误
type RewardLedger interface {
	Apply(ctx context.Context, uid, taskId int64, round domain.Round, g domain.Grade) (domain.ApplyResult, error)
	Total(ctx context.Context, uid int64) (int64, error)
}

type rewardLedger struct {
	repo repository.LedgerRepository
}

func NewRewardLedger(repo repository.LedgerRepository) RewardLedger {
	return &rewardLedger{repo: repo}
}

func (l *rewardLedger) Apply(ctx context.Context, uid, taskId int64, round domain.Round, g domain.Grade) (domain.ApplyResult, error) {
	res, err := l.repo.Apply(ctx, domain.LedgerEntry{
		Uid:     uid,
		TaskId:  taskId,
		Round:   round,
		Outcome: g.Outcome(),
		Points:  g.Points,
	})
	if err != nil {
		return domain.ApplyResult{}, err
	}
	if res.Applied {
		ledgerCounter.WithLabelValues("applied").Inc()
	} else {
		ledgerCounter.WithLabelValues("already_applied").Inc()
	}
	return res, nil
}

func (l *rewardLedger) Total(ctx context.Context, uid int64) (int64, error) {
	return l.repo.Total(ctx, uid)
}
