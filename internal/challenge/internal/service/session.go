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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/safeclick/academy/internal/challenge/internal/domain"
	"github.com/safeclick/academy/internal/challenge/internal/repository"
)

// SessionStore 管理作答会话的生命周期
// Unopened -> Open -> Submitted | Expired，终态之后不再变化
type SessionStore interface {
	// Open 复用还没过期的会话并重置倒计时，否则新建
	Open(ctx context.Context, uid int64, task domain.Task) (domain.Session, error)
	ValidateForSubmit(ctx context.Context, sessionId, uid, taskId int64) (domain.Session, error)
	// Finalize 返回 false 代表并发的另一个请求已经写了终态
	Finalize(ctx context.Context, s domain.Session, g domain.Grade) (bool, error)
	// Expire 把超时的会话标记为终态，效果和提交了 timeout 一样
	Expire(ctx context.Context, s domain.Session) (bool, error)
	LockedTasks(ctx context.Context, uid int64, taskIds []int64) (map[int64]bool, error)
	// ExpireOverdue 给定时任务用，返回本次处理的数量
	ExpireOverdue(ctx context.Context, limit int) (int, error)
}

// openAttempts 并发打开同一道题的时候最多重新读取几次
const openAttempts = 3

type sessionStore struct {
	repo   repository.SessionRepository
	now    Clock
	logger *elog.Component
}

func NewSessionStore(repo repository.SessionRepository, now Clock) SessionStore {
	return &sessionStore{
		repo:   repo,
		now:    now,
		logger: elog.DefaultLogger,
	}
}

func (s *sessionStore) Open(ctx context.Context, uid int64, task domain.Task) (domain.Session, error) {
	for i := 0; i < openAttempts; i++ {
		sess, done, err := s.tryOpen(ctx, uid, task)
		if err != nil || done {
			return sess, err
		}
		// 并发的请求刚刚改变了会话状态，重新读取
	}
	return domain.Session{}, fmt.Errorf("打开会话冲突 uid %d, taskId %d", uid, task.Id)
}

// tryOpen 返回 false 代表和并发的请求发生了冲突，需要重新读取最新状态
func (s *sessionStore) tryOpen(ctx context.Context, uid int64, task domain.Task) (domain.Session, bool, error) {
	now := s.now()
	sess, err := s.repo.FindOpen(ctx, uid, task.Id)
	switch {
	case err == nil:
		if !sess.Overdue(now) {
			deadline := now.Add(task.TimeLimit())
			ok, err1 := s.repo.Restart(ctx, sess.Id, now, deadline)
			if err1 != nil || !ok {
				return domain.Session{}, false, err1
			}
			sess.StartedAt, sess.DeadlineAt = now, deadline
			return sess, true, nil
		}
		if _, err = s.Expire(ctx, sess); err != nil {
			return domain.Session{}, false, err
		}
	case !errors.Is(err, repository.ErrRecordNotFound):
		return domain.Session{}, false, err
	}

	locked, err := s.LockedTasks(ctx, uid, []int64{task.Id})
	if err != nil {
		return domain.Session{}, false, err
	}
	if locked[task.Id] {
		return domain.Session{}, false, ErrSessionLocked
	}
	// 唯一索引保证只有一个请求能创建成功，其余的重新读取后复用
	return s.repo.Create(ctx, domain.Session{
		Uid:        uid,
		TaskId:     task.Id,
		Channel:    task.Channel,
		Round:      domain.RoundAt(now),
		StartedAt:  now,
		DeadlineAt: now.Add(task.TimeLimit()),
		Status:     domain.SessionStatusOpen,
	})
}

func (s *sessionStore) ValidateForSubmit(ctx context.Context, sessionId, uid, taskId int64) (domain.Session, error) {
	sess, err := s.repo.GetByID(ctx, sessionId)
	if errors.Is(err, repository.ErrRecordNotFound) || (err == nil && sess.Uid != uid) {
		return domain.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, err
	}
	if sess.Terminal() {
		return domain.Session{}, ErrSessionLocked
	}
	if sess.TaskId != taskId {
		return domain.Session{}, ErrTaskMismatch
	}
	if sess.Overdue(s.now()) {
		ok, err1 := s.Expire(ctx, sess)
		if err1 != nil {
			return domain.Session{}, err1
		}
		if !ok {
			// 并发的提交已经先写了终态
			return domain.Session{}, ErrSessionLocked
		}
		return domain.Session{}, ErrSessionExpired
	}
	return sess, nil
}

func (s *sessionStore) Finalize(ctx context.Context, sess domain.Session, g domain.Grade) (bool, error) {
	now := s.now()
	sess.Status = domain.SessionStatusSubmitted
	sess.SubmittedAt = now
	sess.Choice = g.Choice
	sess.Correct = g.Correct
	sess.Points = g.Points
	sess.Decision = max(now.Sub(sess.StartedAt), 0)
	return s.repo.Finalize(ctx, sess, domain.RoundAt(now).End())
}

func (s *sessionStore) Expire(ctx context.Context, sess domain.Session) (bool, error) {
	sess.Status = domain.SessionStatusExpired
	sess.SubmittedAt = time.Time{}
	sess.Choice = domain.ChoiceTimeout
	sess.Correct = false
	sess.Points = 0
	sess.Decision = sess.DeadlineAt.Sub(sess.StartedAt)
	ok, err := s.repo.Expire(ctx, sess, domain.RoundAt(sess.DeadlineAt).End())
	if err != nil {
		return false, fmt.Errorf("标记会话超时失败 %w", err)
	}
	if ok {
		submissionCounter.WithLabelValues(string(domain.OutcomeTimeout)).Inc()
	}
	return ok, nil
}

func (s *sessionStore) LockedTasks(ctx context.Context, uid int64, taskIds []int64) (map[int64]bool, error) {
	now := s.now()
	return s.repo.LockedTasks(ctx, uid, taskIds, domain.RoundAt(now), now)
}

func (s *sessionStore) ExpireOverdue(ctx context.Context, limit int) (int, error) {
	sessions, err := s.repo.FindOverdue(ctx, s.now(), limit)
	if err != nil {
		return 0, err
	}
	cnt := 0
	for _, sess := range sessions {
		ok, err1 := s.Expire(ctx, sess)
		if err1 != nil {
			s.logger.Error("标记超时会话失败",
				elog.FieldErr(err1),
				elog.Int64("sid", sess.Id))
			continue
		}
		if ok {
			cnt++
		}
	}
	return cnt, nil
}
