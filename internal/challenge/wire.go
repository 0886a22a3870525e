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

//go:build wireinject

package challenge

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/safeclick/academy/internal/challenge/internal/event"
	"github.com/safeclick/academy/internal/challenge/internal/job"
	"github.com/safeclick/academy/internal/challenge/internal/repository"
	"github.com/safeclick/academy/internal/challenge/internal/repository/cache"
	"github.com/safeclick/academy/internal/challenge/internal/repository/dao"
	"github.com/safeclick/academy/internal/challenge/internal/service"
	"github.com/safeclick/academy/internal/challenge/internal/web"
)

func InitModule(db *egorm.Component, q mq.MQ, ec ecache.Cache) (*Module, error) {
	cfg := LoadConfig()
	return InitModuleWithOptions(db, q, cache.NewTaskECache(ec, cfg.CatalogTTL()), cfg, service.SystemClock)
}

// InitModuleWithOptions 测试里替换缓存、配置和时钟
func InitModuleWithOptions(db *egorm.Component, q mq.MQ, tc TaskCache,
	cfg Config, clock Clock) (*Module, error) {
	wire.Build(
		dao.NewGORMTaskDAO,
		dao.NewGORMSessionDAO,
		dao.NewGORMStreakDAO,
		dao.NewGORMLedgerDAO,
		dao.NewGORMHintDAO,
		repository.NewCachedTaskRepository,
		repository.NewSessionRepository,
		repository.NewStreakRepository,
		repository.NewLedgerRepository,
		repository.NewHintRepository,
		initSelector,
		initGrader,
		initHintBudget,
		service.NewSessionStore,
		service.NewRewardLedger,
		service.NewStreakTracker,
		service.NewService,
		event.NewRewardEventProducer,
		initExpireSessionsJob,
		job.NewMigrateJob,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initSelector(cfg Config) *service.DailySelector {
	return service.NewDailySelector(cfg.PoolSize)
}

func initGrader(cfg Config) *service.Grader {
	return service.NewGrader(cfg.PointsLimit)
}

func initHintBudget(repo repository.HintRepository, cfg Config, clock Clock) service.HintBudget {
	return service.NewHintBudget(repo, cfg.HintDailyCap, clock)
}

func initExpireSessionsJob(store service.SessionStore, cfg Config) *job.ExpireSessionsJob {
	return job.NewExpireSessionsJob(store, cfg.SweepBatchSize, cfg.SweepMaxBatches)
}
