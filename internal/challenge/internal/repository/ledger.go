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

type LedgerRepository interface {
	Apply(ctx context.Context, entry domain.LedgerEntry) (domain.ApplyResult, error)
	Total(ctx context.Context, uid int64) (int64, error)
	FindEntry(ctx context.Context, uid, taskId int64, round domain.Round) (domain.LedgerEntry, error)
}

type ledgerRepository struct {
	dao dao.LedgerDAO
}

func NewLedgerRepository(d dao.LedgerDAO) LedgerRepository {
	return &ledgerRepository{dao: d}
}

func (repo *ledgerRepository) Apply(ctx context.Context, entry domain.LedgerEntry) (domain.ApplyResult, error) {
	res, err := repo.dao.Apply(ctx, dao.LedgerEntry{
		Uid:     entry.Uid,
		TaskId:  entry.TaskId,
		Round:   entry.Round.Int64(),
		Outcome: string(entry.Outcome),
		Points:  entry.Points,
	})
	if err != nil {
		return domain.ApplyResult{}, err
	}
	return domain.ApplyResult{
		Applied:        res.Applied,
		AlreadyApplied: !res.Applied,
		Total:          res.Total,
		Streak:         toDomainStreak(res.Streak),
	}, nil
}

func (repo *ledgerRepository) Total(ctx context.Context, uid int64) (int64, error) {
	return repo.dao.Total(ctx, uid)
}

func (repo *ledgerRepository) FindEntry(ctx context.Context, uid, taskId int64, round domain.Round) (domain.LedgerEntry, error) {
	e, err := repo.dao.FindEntry(ctx, uid, taskId, round.Int64())
	return domain.LedgerEntry{
		Uid:     e.Uid,
		TaskId:  e.TaskId,
		Round:   domain.Round(e.Round),
		Outcome: domain.Outcome(e.Outcome),
		Points:  e.Points,
		Ctime:   e.Ctime,
	}, err
}
