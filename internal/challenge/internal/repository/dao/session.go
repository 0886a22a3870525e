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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionDAO interface {
	// Create 返回 false 代表这道题已经有一个打开的会话
	Create(ctx context.Context, s Session) (Session, bool, error)
	GetByID(ctx context.Context, id int64) (Session, error)
	// FindOpen 找到最近一个还没有进入终态的会话
	FindOpen(ctx context.Context, uid, taskId int64) (Session, error)
	// Restart 只有会话还处于打开状态并且没有过期的时候才会成功
	Restart(ctx context.Context, id, startedAt, deadlineAt int64) (bool, error)
	// Finalize 以 status = open 作为条件写终态，同时写入按题按天的锁
	Finalize(ctx context.Context, s Session, lockedUntil int64) (bool, error)
	// Expire 和 Finalize 一样写终态，同时在同一个事务里清零连续天数
	Expire(ctx context.Context, s Session, lockedUntil int64) (bool, error)
	// FindSince 查询 since 之后截止或者提交的会话，用于计算锁定状态
	FindSince(ctx context.Context, uid int64, taskIds []int64, since int64) ([]Session, error)
	FindLocks(ctx context.Context, uid int64, taskIds []int64, now int64) ([]TaskLock, error)
	FindOverdue(ctx context.Context, now int64, limit int) ([]Session, error)
}

type GORMSessionDAO struct {
	db      *egorm.Component
	streaks StreakDAO
}

func NewGORMSessionDAO(db *egorm.Component, streaks StreakDAO) SessionDAO {
	return &GORMSessionDAO{db: db, streaks: streaks}
}

func (dao *GORMSessionDAO) Create(ctx context.Context, s Session) (Session, bool, error) {
	now := time.Now().UnixMilli()
	s.Id = 0
	s.Ctime, s.Utime = now, now
	s.Status = SessionStatusOpen
	s.OpenKey = 0
	res := dao.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&s)
	if res.Error != nil {
		return Session{}, false, res.Error
	}
	return s, res.RowsAffected > 0, nil
}

func (dao *GORMSessionDAO) GetByID(ctx context.Context, id int64) (Session, error) {
	var res Session
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMSessionDAO) FindOpen(ctx context.Context, uid, taskId int64) (Session, error) {
	var res Session
	err := dao.db.WithContext(ctx).
		Where("uid = ? AND task_id = ? AND status = ?", uid, taskId, SessionStatusOpen).
		Order("id DESC").
		First(&res).Error
	return res, err
}

func (dao *GORMSessionDAO) Restart(ctx context.Context, id, startedAt, deadlineAt int64) (bool, error) {
	res := dao.db.WithContext(ctx).Model(&Session{}).
		Where("id = ? AND status = ? AND deadline_at >= ?", id, SessionStatusOpen, startedAt).
		Updates(map[string]any{
			"started_at":  startedAt,
			"deadline_at": deadlineAt,
			"utime":       time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (dao *GORMSessionDAO) Finalize(ctx context.Context, s Session, lockedUntil int64) (bool, error) {
	var ok bool
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		ok, err = dao.finalize(tx, s, lockedUntil)
		return err
	})
	return ok, err
}

func (dao *GORMSessionDAO) Expire(ctx context.Context, s Session, lockedUntil int64) (bool, error) {
	var ok bool
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		ok, err = dao.finalize(tx, s, lockedUntil)
		if err != nil || !ok {
			return err
		}
		_, err = dao.streaks.WithTx(tx).Reset(ctx, s.Uid)
		return err
	})
	if err != nil {
		// 整个事务回滚，会话仍然是打开状态，重试的时候会再次过期
		return false, err
	}
	return ok, nil
}

func (dao *GORMSessionDAO) finalize(tx *gorm.DB, s Session, lockedUntil int64) (bool, error) {
	now := time.Now().UnixMilli()
	res := tx.Model(&Session{}).
		Where("id = ? AND status = ?", s.Id, SessionStatusOpen).
		Updates(map[string]any{
			"status":          s.Status,
			"submitted_at":    s.SubmittedAt,
			"choice":          s.Choice,
			"is_correct":      s.IsCorrect,
			"points":          s.Points,
			"decision_millis": s.DecisionMillis,
			// 让出打开的位置
			"open_key": s.Id,
			"utime":    now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		// 别人已经写了终态
		return false, nil
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}, {Name: "task_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"locked_until", "utime"}),
	}).Create(&TaskLock{
		Uid:         s.Uid,
		TaskId:      s.TaskId,
		LockedUntil: lockedUntil,
		Ctime:       now,
		Utime:       now,
	}).Error
	return err == nil, err
}

func (dao *GORMSessionDAO) FindSince(ctx context.Context, uid int64, taskIds []int64, since int64) ([]Session, error) {
	var res []Session
	if len(taskIds) == 0 {
		return res, nil
	}
	err := dao.db.WithContext(ctx).
		Where("uid = ? AND task_id IN ? AND (deadline_at >= ? OR submitted_at >= ?)", uid, taskIds, since, since).
		Find(&res).Error
	return res, err
}

func (dao *GORMSessionDAO) FindLocks(ctx context.Context, uid int64, taskIds []int64, now int64) ([]TaskLock, error) {
	var res []TaskLock
	if len(taskIds) == 0 {
		return res, nil
	}
	err := dao.db.WithContext(ctx).
		Where("uid = ? AND task_id IN ? AND locked_until > ?", uid, taskIds, now).
		Find(&res).Error
	return res, err
}

func (dao *GORMSessionDAO) FindOverdue(ctx context.Context, now int64, limit int) ([]Session, error) {
	var res []Session
	err := dao.db.WithContext(ctx).
		Where("status = ? AND deadline_at < ?", SessionStatusOpen, now).
		Order("deadline_at ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}
