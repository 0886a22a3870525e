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

package ioc

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ego-component/egorm"
	// 探活直接走 database/sql
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/safeclick/academy/config"
	"github.com/safeclick/academy/internal/pkg/database"
)

// InitDB 等数据库可用之后再建连接池，每条语句都会带上追踪
func InitDB() *egorm.Component {
	var cfg config.MySQLConfig
	if err := econf.UnmarshalKey("mysql", &cfg); err != nil {
		panic(err)
	}
	if err := waitForDB(cfg); err != nil {
		panic(err)
	}
	db := egorm.Load("mysql").Build()
	if err := db.Use(database.NewGormTracingPlugin()); err != nil {
		panic(err)
	}
	return db
}

func waitForDB(cfg config.MySQLConfig) error {
	ping := withPingDefaults(cfg.Ping)
	sqlDB, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return fmt.Errorf("打开数据库失败: %w", err)
	}
	defer sqlDB.Close()
	strategy, err := retry.NewExponentialBackoffRetryStrategy(
		time.Duration(ping.InitialMillis)*time.Millisecond,
		time.Duration(ping.MaxMillis)*time.Millisecond,
		ping.Retries)
	if err != nil {
		return err
	}
	timeout := time.Duration(ping.TimeoutMillis) * time.Millisecond
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("等待数据库启动超过重试次数: %w", err)
		}
		elog.DefaultLogger.Warn("数据库还不可用", elog.FieldErr(err), elog.FieldCost(next))
		time.Sleep(next)
	}
}

func withPingDefaults(p config.MySQLPingConfig) config.MySQLPingConfig {
	if p.InitialMillis <= 0 {
		p.InitialMillis = 1000
	}
	if p.MaxMillis <= 0 {
		p.MaxMillis = 10_000
	}
	if p.TimeoutMillis <= 0 {
		p.TimeoutMillis = 5000
	}
	if p.Retries <= 0 {
		p.Retries = 10
	}
	return p
}
