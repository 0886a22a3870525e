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

package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type migration struct {
	version int64
	name    string
	up      func(tx *gorm.DB) error
}

// migrations 只能追加，不能修改已经发布的版本
var migrations = []migration{
	{
		version: 1,
		name:    "create challenge tables",
		up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&Task{},
				&Session{},
				&LedgerEntry{},
				&Points{},
				&Streak{},
				&HintBucket{},
			)
		},
	},
	{
		version: 2,
		name:    "create legacy task locks",
		up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&TaskLock{})
		},
	},
	{
		version: 3,
		name:    "add session open slot",
		up:      addSessionOpenSlot,
	},
}

// addSessionOpenSlot 老数据里终态的会话占用自己的 id，
// 重复打开的会话只保留最新的一个，其余的让出位置，然后再建唯一索引
func addSessionOpenSlot(tx *gorm.DB) error {
	m := tx.Migrator()
	if !m.HasColumn(&Session{}, "OpenKey") {
		if err := m.AddColumn(&Session{}, "OpenKey"); err != nil {
			return err
		}
	}
	err := tx.Exec("UPDATE challenge_sessions SET open_key = id WHERE status <> ? AND open_key = 0",
		SessionStatusOpen).Error
	if err != nil {
		return err
	}
	err = tx.Exec(`UPDATE challenge_sessions SET open_key = id
WHERE status = ? AND open_key = 0 AND id NOT IN (
	SELECT id FROM (
		SELECT MAX(id) AS id FROM challenge_sessions WHERE status = ? GROUP BY uid, task_id
	) latest
)`, SessionStatusOpen, SessionStatusOpen).Error
	if err != nil {
		return err
	}
	if m.HasIndex(&Session{}, "unq_session_open_slot") {
		return nil
	}
	return m.CreateIndex(&Session{}, "unq_session_open_slot")
}

// Migrate 部署的时候执行一次，返回本次执行的版本
func Migrate(ctx context.Context, db *egorm.Component) ([]int64, error) {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(&SchemaVersion{}); err != nil {
		return nil, fmt.Errorf("初始化版本表失败: %w", err)
	}
	var current int64
	err := db.Model(&SchemaVersion{}).
		Select("COALESCE(MAX(version), 0)").
		Scan(&current).Error
	if err != nil {
		return nil, fmt.Errorf("查询当前版本失败: %w", err)
	}
	applied := make([]int64, 0, len(migrations))
	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		// DDL 在 MySQL 上会隐式提交，所以先执行再记录版本，各个步骤本身都是可重入的
		if err = m.up(db); err != nil {
			return applied, fmt.Errorf("执行迁移 %d %s 失败: %w", m.version, m.name, err)
		}
		err = db.Create(&SchemaVersion{
			Version: m.version,
			Name:    m.name,
			Ctime:   time.Now().UnixMilli(),
		}).Error
		if err != nil {
			return applied, fmt.Errorf("记录迁移版本 %d 失败: %w", m.version, err)
		}
		applied = append(applied, m.version)
	}
	return applied, nil
}

// InitTables 测试和本地开发使用
func InitTables(db *egorm.Component) error {
	_, err := Migrate(context.Background(), db)
	return err
}
