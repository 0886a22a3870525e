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
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/safeclick/academy/internal/challenge/internal/domain"
	"github.com/safeclick/academy/internal/challenge/internal/event"
	"github.com/safeclick/academy/internal/challenge/internal/repository"
	"golang.org/x/sync/errgroup"
)

// Service 每日挑战对外的入口，学员 id 都由调用方显式传入
type Service interface {
	List(ctx context.Context, uid int64) (Board, error)
	Open(ctx context.Context, uid, taskId int64) (OpenedTask, error)
	Submit(ctx context.Context, req SubmitRequest) (SubmitResult, error)
	Hint(ctx context.Context, uid, taskId int64) (HintResult, error)
	Profile(ctx context.Context, uid int64) (Profile, error)
}

type Board struct {
	Tasks     []Card
	AllLocked bool
	// NextUnlock 全部锁定的时候是下一个 UTC 零点，否则是零值
	NextUnlock time.Time
}

type Card struct {
	Task   domain.Task
	Locked bool
}

type OpenedTask struct {
	Task    domain.Task
	Session domain.Session
	Now     time.Time
}

type SubmitRequest struct {
	Uid       int64
	TaskId    int64
	SessionId int64
	Choice    string
}

type SubmitResult struct {
	Correct        bool
	Points         int64
	CorrectAnswer  domain.Choice
	Rationale      string
	TotalPoints    int64
	Applied        bool
	AlreadyApplied bool
	Streak         int64
	BestStreak     int64
}

type HintResult struct {
	Clue       domain.Clue
	TokensLeft int64
}

type Profile struct {
	TotalPoints int64
	Streak      int64
	BestStreak  int64
	HintTokens  int64
}

type service struct {
	tasks    repository.TaskRepository
	selector *DailySelector
	sessions SessionStore
	grader   *Grader
	ledger   RewardLedger
	streaks  StreakTracker
	hints    HintBudget
	producer event.RewardEventProducer
	now      Clock
	logger   *elog.Component
}

func NewService(tasks repository.TaskRepository,
	selector *DailySelector,
	sessions SessionStore,
	grader *Grader,
	ledger RewardLedger,
	streaks StreakTracker,
	hints HintBudget,
	producer event.RewardEventProducer,
	now Clock) Service {
	return &service{
		tasks:    tasks,
		selector: selector,
		sessions: sessions,
		grader:   grader,
		ledger:   ledger,
		streaks:  streaks,
		hints:    hints,
		producer: producer,
		now:      now,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) List(ctx context.Context, uid int64) (Board, error) {
	round := domain.RoundAt(s.now())
	assigned, err := s.assigned(ctx, uid, round)
	if err != nil {
		return Board{}, err
	}
	ids := slice.Map(assigned, func(idx int, src domain.Task) int64 {
		return src.Id
	})
	locked, err := s.sessions.LockedTasks(ctx, uid, ids)
	if err != nil {
		return Board{}, err
	}
	res := Board{
		Tasks: slice.Map(assigned, func(idx int, src domain.Task) Card {
			return Card{Task: src, Locked: locked[src.Id]}
		}),
	}
	res.AllLocked = len(res.Tasks) > 0 && !slices.ContainsFunc(res.Tasks, func(c Card) bool {
		return !c.Locked
	})
	if res.AllLocked {
		res.NextUnlock = round.End()
	}
	return res, nil
}

func (s *service) Open(ctx context.Context, uid, taskId int64) (OpenedTask, error) {
	task, err := s.assignedTask(ctx, uid, taskId)
	if err != nil {
		return OpenedTask{}, err
	}
	sess, err := s.sessions.Open(ctx, uid, task)
	if err != nil {
		return OpenedTask{}, err
	}
	return OpenedTask{Task: task, Session: sess, Now: s.now()}, nil
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (SubmitResult, error) {
	choice, err := domain.ParseChoice(req.Choice)
	if err != nil {
		return SubmitResult{}, err
	}
	sess, err := s.sessions.ValidateForSubmit(ctx, req.SessionId, req.Uid, req.TaskId)
	if err != nil {
		return SubmitResult{}, err
	}
	task, err := s.tasks.GetByID(ctx, req.TaskId)
	if err != nil {
		return SubmitResult{}, err
	}
	g := s.grader.GradeChoice(choice, task)
	submissionCounter.WithLabelValues(string(g.Outcome())).Inc()

	// 账本是唯一权威的幂等边界，会话终态只是为了后续请求快速返回 LOCKED
	applied, err := s.ledger.Apply(ctx, req.Uid, req.TaskId, sess.Round, g)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("记账失败 %w", err)
	}
	if applied.Applied {
		s.produceReward(ctx, req, sess.Round, g, applied)
	}
	if _, err = s.sessions.Finalize(ctx, sess, g); err != nil {
		// 账本已经写成功，重试的时候会得到 AlreadyApplied
		return SubmitResult{}, fmt.Errorf("写入会话终态失败 %w", err)
	}
	return SubmitResult{
		Correct:        g.Correct,
		Points:         g.Points,
		CorrectAnswer:  task.Answer(),
		Rationale:      task.Rationale,
		TotalPoints:    applied.Total,
		Applied:        applied.Applied,
		AlreadyApplied: applied.AlreadyApplied,
		Streak:         applied.Streak.Current,
		BestStreak:     applied.Streak.Best,
	}, nil
}

func (s *service) produceReward(ctx context.Context, req SubmitRequest,
	round domain.Round, g domain.Grade, res domain.ApplyResult) {
	err := s.producer.Produce(ctx, event.RewardEvent{
		Uid:     req.Uid,
		TaskId:  req.TaskId,
		Round:   round.Int64(),
		Outcome: string(g.Outcome()),
		Points:  g.Points,
		Total:   res.Total,
		Streak:  res.Streak.Current,
	})
	if err != nil {
		s.logger.Error("发送奖励事件失败",
			elog.FieldErr(err),
			elog.Int64("uid", req.Uid),
			elog.Int64("taskId", req.TaskId))
	}
}

func (s *service) Hint(ctx context.Context, uid, taskId int64) (HintResult, error) {
	task, err := s.assignedTask(ctx, uid, taskId)
	if err != nil {
		return HintResult{}, err
	}
	if len(task.Clues) == 0 {
		return HintResult{}, ErrNoClue
	}
	remaining, ok, err := s.hints.Consume(ctx, uid)
	if err != nil {
		return HintResult{}, err
	}
	if !ok {
		return HintResult{TokensLeft: remaining}, ErrNoHintTokens
	}
	return HintResult{
		Clue:       task.Clues[rand.IntN(len(task.Clues))],
		TokensLeft: remaining,
	}, nil
}

func (s *service) Profile(ctx context.Context, uid int64) (Profile, error) {
	var (
		eg     errgroup.Group
		res    Profile
		streak domain.Streak
	)
	eg.Go(func() error {
		var err error
		res.TotalPoints, err = s.ledger.Total(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		streak, err = s.streaks.Get(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		res.HintTokens, err = s.hints.Peek(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return Profile{}, err
	}
	res.Streak, res.BestStreak = streak.Current, streak.Best
	return res, nil
}

func (s *service) assigned(ctx context.Context, uid int64, round domain.Round) ([]domain.Task, error) {
	catalog, err := s.tasks.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	byId := make(map[int64]domain.Task, len(catalog))
	ids := make([]int64, 0, len(catalog))
	for _, t := range catalog {
		byId[t.Id] = t
		ids = append(ids, t.Id)
	}
	selected := s.selector.Select(round, uid, ids)
	return slice.Map(selected, func(idx int, id int64) domain.Task {
		return byId[id]
	}), nil
}

// assignedTask 题目必须存在并且在今天分配给这个学员的题目里
func (s *service) assignedTask(ctx context.Context, uid, taskId int64) (domain.Task, error) {
	assigned, err := s.assigned(ctx, uid, domain.RoundAt(s.now()))
	if err != nil {
		return domain.Task{}, err
	}
	for _, t := range assigned {
		if t.Id == taskId {
			return t, nil
		}
	}
	if _, err = s.tasks.GetByID(ctx, taskId); err != nil {
		return domain.Task{}, err
	}
	return domain.Task{}, ErrTaskNotAssigned
}
