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

package startup

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/safeclick/academy/internal/challenge"
	"github.com/safeclick/academy/internal/challenge/internal/domain"
	"github.com/safeclick/academy/internal/challenge/internal/repository/cache"
)

// InitModule 用内存题库缓存代替 redis
func InitModule(db *egorm.Component, q mq.MQ, cfg challenge.Config, clock challenge.Clock) (*challenge.Module, error) {
	return challenge.InitModuleWithOptions(db, q, &memoryTaskCache{}, cfg.WithDefaults(), clock)
}

type memoryTaskCache struct {
	mu    sync.RWMutex
	tasks []domain.Task
	ok    bool
}

func (c *memoryTaskCache) GetPublished(ctx context.Context) ([]domain.Task, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.ok {
		return nil, cache.ErrTasksNotFound
	}
	return c.tasks, nil
}

func (c *memoryTaskCache) SetPublished(ctx context.Context, tasks []domain.Task) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks, c.ok = tasks, true
	return nil
}
