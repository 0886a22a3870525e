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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
	"github.com/safeclick/academy/internal/challenge/internal/domain"
)

var ErrTasksNotFound = errors.New("题库缓存没找到")

// TaskCache 缓存整个已发布题库，题库很小并且每天只会被选题读一次
type TaskCache interface {
	GetPublished(ctx context.Context) ([]domain.Task, error)
	SetPublished(ctx context.Context, tasks []domain.Task) error
}

type TaskECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewTaskECache(ec ecache.Cache, expiration time.Duration) TaskCache {
	return &TaskECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "challenge:",
		},
		expiration: expiration,
	}
}

func (c *TaskECache) GetPublished(ctx context.Context) ([]domain.Task, error) {
	val := c.ec.Get(ctx, c.publishedKey())
	if val.KeyNotFound() {
		return nil, ErrTasksNotFound
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询题库缓存出错")
	}
	str, err := val.String()
	if err != nil {
		return nil, errors.Wrap(err, "题库缓存格式错误")
	}
	var res []domain.Task
	err = json.Unmarshal([]byte(str), &res)
	return res, errors.Wrap(err, "反序列化题库失败")
}

func (c *TaskECache) SetPublished(ctx context.Context, tasks []domain.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return errors.Wrap(err, "序列化题库失败")
	}
	return c.ec.Set(ctx, c.publishedKey(), string(data), c.expiration)
}

func (c *TaskECache) publishedKey() string {
	return "tasks:published"
}
