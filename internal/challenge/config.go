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

package challenge

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/safeclick/academy/internal/challenge/internal/service"
)

// Config 对应配置文件里的 challenge 节点，没有配置或者配置成非正数都使用默认值
type Config struct {
	PoolSize            int   `yaml:"poolSize"`
	HintDailyCap        int64 `yaml:"hintDailyCap"`
	PointsLimit         int64 `yaml:"pointsLimit"`
	CatalogCacheSeconds int64 `yaml:"catalogCacheSeconds"`
	SweepBatchSize      int   `yaml:"sweepBatchSize"`
	SweepMaxBatches     int   `yaml:"sweepMaxBatches"`
}

func LoadConfig() Config {
	var cfg Config
	if err := econf.UnmarshalKey("challenge", &cfg); err != nil {
		elog.DefaultLogger.Warn("读取每日挑战配置失败，使用默认值", elog.FieldErr(err))
	}
	return cfg.WithDefaults()
}

func (c Config) WithDefaults() Config {
	if c.PoolSize <= 0 {
		c.PoolSize = service.DefaultPoolSize
	}
	if c.HintDailyCap <= 0 {
		c.HintDailyCap = service.DefaultHintDailyCap
	}
	if c.PointsLimit <= 0 {
		c.PointsLimit = service.DefaultPointsLimit
	}
	if c.CatalogCacheSeconds <= 0 {
		c.CatalogCacheSeconds = 60
	}
	if c.SweepBatchSize <= 0 {
		c.SweepBatchSize = 100
	}
	if c.SweepMaxBatches <= 0 {
		c.SweepMaxBatches = 10
	}
	return c
}

func (c Config) CatalogTTL() time.Duration {
	return time.Duration(c.CatalogCacheSeconds) * time.Second
}
