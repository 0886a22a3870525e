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
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LedgerDAO interface {
	// Apply 插入流水、累加总分、更新连续天数在同一个事务里完成。
	// (uid, task_id, round) 已经存在的时候什么都不改，Applied 为 false
	Apply(ctx context.Context, entry LedgerEntry) (ApplyResult, error)
	Total(ctx context.Context, uid int64) (int64, error)
	FindEntry(ctx context.Context, uid, taskId, round int64) (LedgerEntry, error)
}

type ApplyResult struct {
	Applied bool
	Total   int64
	Streak  Streak
}

type GORMLedgerDAO struct {
	db      *egorm.Component
	streaks StreakDAO
}

func NewGORMLedgerDAO(db *egorm.Component, streaks StreakDAO) LedgerDAO {
	return &GORMLedgerDAO{db: db, streaks: streaks}
}

func (dao *GORMLedgerDAO) Apply(ctx context.Context, entry LedgerEntry) (ApplyResult, error) {
	var res ApplyResult
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		entry.Id = 0
		entry.Ctime = now
		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry)
		if ins.Error != nil {
			return fmt.Errorf("插入经验值流水失败: %w", ins.Error)
		}
		res.Applied = ins.RowsAffected > 0

		var err error
		streaks := dao.streaks.WithTx(tx)
		if res.Applied {
			if err = dao.addPoints(tx, entry.Uid, entry.Points, now); err != nil {
				return fmt.Errorf("累加经验值失败: %w", err)
			}
			if entry.Points > 0 {
				res.Streak, err = streaks.Bump(ctx, entry.Uid, entry.Round)
			} else {
				res.Streak, err = streaks.Reset(ctx, entry.Uid)
			}
			if err != nil {
				return fmt.Errorf("更新连续天数失败: %w", err)
			}
		} else {
			res.Streak, err = streaks.Get(ctx, entry.Uid)
			if err != nil {
				return err
			}
		}
		res.Total, err = dao.total(tx, entry.Uid)
		return err
	})
	return res, err
}

func (dao *GORMLedgerDAO) addPoints(tx *gorm.DB, uid, delta, now int64) error {
	err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Points{Uid: uid, Ctime: now, Utime: now}).Error
	if err != nil {
		return err
	}
	return tx.Model(&Points{}).
		Where("uid = ?", uid).
		Updates(map[string]any{
			"total": gorm.Expr("total + ?", delta),
			"utime": now,
		}).Error
}

func (dao *GORMLedgerDAO) total(tx *gorm.DB, uid int64) (int64, error) {
	var p Points
	err := tx.Where("uid = ?", uid).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	return p.Total, err
}

func (dao *GORMLedgerDAO) Total(ctx context.Context, uid int64) (int64, error) {
	return dao.total(dao.db.WithContext(ctx), uid)
}

func (dao *GORMLedgerDAO) FindEntry(ctx context.Context, uid, taskId, round int64) (LedgerEntry, error) {
	var res LedgerEntry
	err := dao.db.WithContext(ctx).
		Where("uid = ? AND task_id = ? AND round = ?", uid, taskId, round).
		First(&res).Error
	return res, err
}
