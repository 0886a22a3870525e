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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/safeclick/academy/internal/challenge/internal/domain"
	"github.com/safeclick/academy/internal/challenge/internal/repository/cache"
	"github.com/safeclick/academy/internal/challenge/internal/repository/dao"
)

var ErrTaskNotFound = errors.New("题目不存在")

// TaskRepository 只读题库，已发布的题目整体缓存
type TaskRepository interface {
	ListPublished(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id int64) (domain.Task, error)
}

type CachedTaskRepository struct {
	dao    dao.TaskDAO
	cache  cache.TaskCache
	logger *elog.Component
}

func NewCachedTaskRepository(d dao.TaskDAO, c cache.TaskCache) TaskRepository {
	return &CachedTaskRepository{dao: d, cache: c, logger: elog.DefaultLogger}
}

func (repo *CachedTaskRepository) ListPublished(ctx context.Context) ([]domain.Task, error) {
	res, err := repo.cache.GetPublished(ctx)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, cache.ErrTasksNotFound) {
		repo.logger.Error("读取题库缓存失败", elog.FieldErr(err))
	}
	tasks, err := repo.dao.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	res = slice.Map(tasks, func(idx int, src dao.Task) domain.Task {
		return repo.toDomain(src)
	})
	if er := repo.cache.SetPublished(ctx, res); er != nil {
		repo.logger.Error("回写题库缓存失败", elog.FieldErr(er))
	}
	return res, nil
}

func (repo *CachedTaskRepository) GetByID(ctx context.Context, id int64) (domain.Task, error) {
	tasks, err := repo.ListPublished(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	for _, t := range tasks {
		if t.Id == id {
			return t, nil
		}
	}
	return domain.Task{}, ErrTaskNotFound
}

func (repo *CachedTaskRepository) toDomain(t dao.Task) domain.Task {
	return domain.Task{
		Id:            t.Id,
		Channel:       t.Channel,
		Title:         t.Title,
		Body:          t.Body,
		Truth:         domain.Choice(t.Truth),
		IsPhish:       t.IsPhish,
		Rationale:     t.Rationale,
		TimeLimitSec:  t.TimeLimitSec,
		PointsCorrect: t.PointsCorrect,
		PointsWrong:   t.PointsWrong,
		Clues: slice.Map(t.Clues.Val, func(idx int, src dao.Clue) domain.Clue {
			return domain.Clue{Label: src.Label, Explanation: src.Explanation}
		}),
		Status: domain.TaskStatus(t.Status),
		Utime:  t.Utime,
	}
}
