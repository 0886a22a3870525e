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

type HintRepository interface {
	Get(ctx context.Context, uid int64) (domain.HintBucket, error)
	Consume(ctx context.Context, uid int64, today domain.Round, capacity int64) (int64, bool, error)
}

type hintRepository struct {
	dao dao.HintDAO
}

func NewHintRepository(d dao.HintDAO) HintRepository {
	return &hintRepository{dao: d}
}

func (repo *hintRepository) Get(ctx context.Context, uid int64) (domain.HintBucket, error) {
	b, err := repo.dao.Get(ctx, uid)
	return domain.HintBucket{
		Uid:          b.Uid,
		Tokens:       b.Tokens,
		LastResetDay: domain.Round(b.LastResetDay),
	}, err
}

func (repo *hintRepository) Consume(ctx context.Context, uid int64, today domain.Round, capacity int64) (int64, bool, error) {
	return repo.dao.Consume(ctx, uid, today.Int64(), capacity)
}
