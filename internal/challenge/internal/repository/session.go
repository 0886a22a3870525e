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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/safeclick/academy/internal/challenge/internal/domain"
	"github.com/safeclick/academy/internal/challenge/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type SessionRepository interface {
	// Create 返回 false 代表已经存在一个打开的会话，什么都没有写
	Create(ctx context.Context, s domain.Session) (domain.Session, bool, error)
	GetByID(ctx context.Context, id int64) (domain.Session, error)
	FindOpen(ctx context.Context, uid, taskId int64) (domain.Session, error)
	Restart(ctx context.Context, id int64, startedAt, deadlineAt time.Time) (bool, error)
	// Finalize 写终态，返回 false 代表会话已经被别的请求写成了终态
	Finalize(ctx context.Context, s domain.Session, lockedUntil time.Time) (bool, error)
	// Expire 写超时终态并清零连续天数，两者要么都成功要么都不生效
	Expire(ctx context.Context, s domain.Session, lockedUntil time.Time) (bool, error)
	// LockedTasks 返回 taskIds 里今天已经锁定的题目
	LockedTasks(ctx context.Context, uid int64, taskIds []int64, round domain.Round, now time.Time) (map[int64]bool, error)
	FindOverdue(ctx context.Context, now time.Time, limit int) ([]domain.Session, error)
}

type sessionRepository struct {
	dao dao.SessionDAO
}

func NewSessionRepository(d dao.SessionDAO) SessionRepository {
	return &sessionRepository{dao: d}
}

func (repo *sessionRepository) Create(ctx context.Context, s domain.Session) (domain.Session, bool, error) {
	res, ok, err := repo.dao.Create(ctx, repo.toEntity(s))
	return repo.toDomain(res), ok, err
}

func (repo *sessionRepository) GetByID(ctx context.Context, id int64) (domain.Session, error) {
	res, err := repo.dao.GetByID(ctx, id)
	return repo.toDomain(res), err
}

func (repo *sessionRepository) FindOpen(ctx context.Context, uid, taskId int64) (domain.Session, error) {
	res, err := repo.dao.FindOpen(ctx, uid, taskId)
	return repo.toDomain(res), err
}

func (repo *sessionRepository) Restart(ctx context.Context, id int64, startedAt, deadlineAt time.Time) (bool, error) {
	return repo.dao.Restart(ctx, id, startedAt.UnixMilli(), deadlineAt.UnixMilli())
}

func (repo *sessionRepository) Finalize(ctx context.Context, s domain.Session, lockedUntil time.Time) (bool, error) {
	return repo.dao.Finalize(ctx, repo.toEntity(s), lockedUntil.UnixMilli())
}

func (repo *sessionRepository) Expire(ctx context.Context, s domain.Session, lockedUntil time.Time) (bool, error) {
	return repo.dao.Expire(ctx, repo.toEntity(s), lockedUntil.UnixMilli())
}

func (repo *sessionRepository) LockedTasks(ctx context.Context, uid int64, taskIds []int64,
	round domain.Round, now time.Time) (map[int64]bool, error) {
	res := make(map[int64]bool, len(taskIds))
	sessions, err := repo.dao.FindSince(ctx, uid, taskIds, round.Start().UnixMilli())
	if err != nil {
		return nil, err
	}
	for _, s := range sessions {
		if repo.toDomain(s).LockedIn(round, now) {
			res[s.TaskId] = true
		}
	}
	locks, err := repo.dao.FindLocks(ctx, uid, taskIds, now.UnixMilli())
	if err != nil {
		return nil, err
	}
	for _, l := range locks {
		res[l.TaskId] = true
	}
	return res, nil
}

func (repo *sessionRepository) FindOverdue(ctx context.Context, now time.Time, limit int) ([]domain.Session, error) {
	res, err := repo.dao.FindOverdue(ctx, now.UnixMilli(), limit)
	return slice.Map(res, func(idx int, src dao.Session) domain.Session {
		return repo.toDomain(src)
	}), err
}

func (repo *sessionRepository) toEntity(s domain.Session) dao.Session {
	var submittedAt int64
	if !s.SubmittedAt.IsZero() {
		submittedAt = s.SubmittedAt.UnixMilli()
	}
	return dao.Session{
		Id:             s.Id,
		Uid:            s.Uid,
		TaskId:         s.TaskId,
		Status:         s.Status.ToUint8(),
		Channel:        s.Channel,
		Day:            s.Round.Int64(),
		StartedAt:      s.StartedAt.UnixMilli(),
		DeadlineAt:     s.DeadlineAt.UnixMilli(),
		SubmittedAt:    submittedAt,
		Choice:         s.Choice.String(),
		IsCorrect:      s.Correct,
		Points:         s.Points,
		DecisionMillis: s.Decision.Milliseconds(),
	}
}

func (repo *sessionRepository) toDomain(s dao.Session) domain.Session {
	res := domain.Session{
		Id:         s.Id,
		Uid:        s.Uid,
		TaskId:     s.TaskId,
		Channel:    s.Channel,
		Round:      domain.Round(s.Day),
		StartedAt:  time.UnixMilli(s.StartedAt).UTC(),
		DeadlineAt: time.UnixMilli(s.DeadlineAt).UTC(),
		Choice:     domain.Choice(s.Choice),
		Correct:    s.IsCorrect,
		Points:     s.Points,
		Decision:   time.Duration(s.DecisionMillis) * time.Millisecond,
		Status:     domain.SessionStatus(s.Status),
	}
	if s.SubmittedAt > 0 {
		res.SubmittedAt = time.UnixMilli(s.SubmittedAt).UTC()
	}
	return res
}
