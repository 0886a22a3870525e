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
	"time"

	"github.com/ego-component/egorm"
	"github.com/safeclick/academy/internal/challenge/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StreakDAO interface {
	Get(ctx context.Context, uid int64) (Streak, error)
	Bump(ctx context.Context, uid int64, day int64) (Streak, error)
	Reset(ctx context.Context, uid int64) (Streak, error)
	// WithTx 让连续天数的修改和调用方在同一个事务里
	WithTx(tx *gorm.DB) StreakDAO
}

type GORMStreakDAO struct {
	db *egorm.Component
}

func NewGORMStreakDAO(db *egorm.Component) StreakDAO {
	return &GORMStreakDAO{db: db}
}

func (dao *GORMStreakDAO) WithTx(tx *gorm.DB) StreakDAO {
	return &GORMStreakDAO{db: tx}
}

func (dao *GORMStreakDAO) Get(ctx context.Context, uid int64) (Streak, error) {
	var res Streak
	err := dao.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Streak{Uid: uid}, nil
	}
	return res, err
}

func (dao *GORMStreakDAO) Bump(ctx context.Context, uid int64, day int64) (Streak, error) {
	return dao.mutate(ctx, uid, func(s domain.Streak) domain.Streak {
		return s.Bump(domain.Round(day))
	})
}

func (dao *GORMStreakDAO) Reset(ctx context.Context, uid int64) (Streak, error) {
	return dao.mutate(ctx, uid, func(s domain.Streak) domain.Streak {
		return s.Reset()
	})
}

func (dao *GORMStreakDAO) mutate(ctx context.Context, uid int64, fn func(s domain.Streak) domain.Streak) (Streak, error) {
	var res Streak
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&Streak{Uid: uid, Ctime: now, Utime: now}).Error
		if err != nil {
			return err
		}
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("uid = ?", uid).First(&res).Error
		if err != nil {
			return err
		}
		s := fn(domain.Streak{
			Uid:           res.Uid,
			Current:       res.Current,
			Best:          res.Best,
			LastActiveDay: domain.Round(res.LastActiveDay),
		})
		res.Current, res.Best, res.LastActiveDay, res.Utime = s.Current, s.Best, s.LastActiveDay.Int64(), now
		return tx.Model(&Streak{}).Where("id = ?", res.Id).Updates(map[string]any{
			"current":         res.Current,
			"best":            res.Best,
			"last_active_day": res.LastActiveDay,
			"utime":           now,
		}).Error
	})
	return res, err
}
