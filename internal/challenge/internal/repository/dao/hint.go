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

type HintDAO interface {
	Get(ctx context.Context, uid int64) (HintBucket, error)
	// Consume 先按天补满再扣减，返回扣减之后的余额
	Consume(ctx context.Context, uid, today, capacity int64) (int64, bool, error)
}

type GORMHintDAO struct {
	db *egorm.Component
}

func NewGORMHintDAO(db *egorm.Component) HintDAO {
	return &GORMHintDAO{db: db}
}

func (dao *GORMHintDAO) Get(ctx context.Context, uid int64) (HintBucket, error) {
	var res HintBucket
	err := dao.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return HintBucket{Uid: uid}, nil
	}
	return res, err
}

func (dao *GORMHintDAO) Consume(ctx context.Context, uid, today, capacity int64) (int64, bool, error) {
	var (
		remaining int64
		ok        bool
	)
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&HintBucket{Uid: uid, Ctime: now, Utime: now}).Error
		if err != nil {
			return err
		}
		var row HintBucket
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("uid = ?", uid).First(&row).Error
		if err != nil {
			return err
		}
		b := domain.HintBucket{
			Uid:          row.Uid,
			Tokens:       row.Tokens,
			LastResetDay: domain.Round(row.LastResetDay),
		}.Refill(domain.Round(today), capacity)
		b, ok = b.Take()
		remaining = b.Tokens
		return tx.Model(&HintBucket{}).Where("id = ?", row.Id).Updates(map[string]any{
			"tokens":         b.Tokens,
			"last_reset_day": b.LastResetDay.Int64(),
			"utime":          now,
		}).Error
	})
	return remaining, ok, err
}
