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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/safeclick/academy/internal/challenge/internal/service"
)

type TaskReq struct {
	TaskId int64 `json:"taskId"`
}

type SubmitReq struct {
	TaskId    int64  `json:"taskId"`
	SessionId int64  `json:"sessionId"`
	Choice    string `json:"choice"`
}

type TaskCard struct {
	Id      int64  `json:"id"`
	Channel string `json:"channel"`
	Title   string `json:"title"`
	Locked  bool   `json:"locked"`
	Icon    string `json:"icon"`
}

type ListResp struct {
	Ok        bool       `json:"ok"`
	Tasks     []TaskCard `json:"tasks"`
	AllLocked bool       `json:"allLocked"`
	// NextUnlockEpoch 秒
	NextUnlockEpoch int64 `json:"nextUnlockEpoch"`
}

func newListResp(b service.Board) ListResp {
	res := ListResp{
		Ok: true,
		Tasks: slice.Map(b.Tasks, func(idx int, src service.Card) TaskCard {
			return TaskCard{
				Id:      src.Task.Id,
				Channel: src.Task.Channel,
				Title:   src.Task.Title,
				Locked:  src.Locked,
				Icon:    src.Task.Icon(),
			}
		}),
		AllLocked: b.AllLocked,
	}
	if b.AllLocked {
		res.NextUnlockEpoch = b.NextUnlock.Unix()
	}
	return res
}

// OpenedTask Now 和 ExpiresAt 都是毫秒，前端据此倒计时，不依赖客户端时钟
type OpenedTask struct {
	Id        int64  `json:"id"`
	SessionId int64  `json:"sessionId"`
	Now       int64  `json:"now"`
	ExpiresAt int64  `json:"expiresAt"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Channel   string `json:"channel"`
}

type OpenResp struct {
	Ok   bool       `json:"ok"`
	Task OpenedTask `json:"task"`
}

func newOpenResp(o service.OpenedTask) OpenResp {
	return OpenResp{
		Ok: true,
		Task: OpenedTask{
			Id:        o.Task.Id,
			SessionId: o.Session.Id,
			Now:       o.Now.UnixMilli(),
			ExpiresAt: o.Session.DeadlineAt.UnixMilli(),
			Title:     o.Task.Title,
			Body:      o.Task.Body,
			Channel:   o.Task.Channel,
		},
	}
}

type SubmitResp struct {
	Ok             bool   `json:"ok"`
	Correct        bool   `json:"correct"`
	Points         int64  `json:"points"`
	CorrectAnswer  string `json:"correctAnswer"`
	Rationale      string `json:"rationale"`
	TotalPoints    int64  `json:"totalPoints"`
	Applied        bool   `json:"applied"`
	AlreadyApplied bool   `json:"alreadyApplied"`
	Streak         int64  `json:"streak"`
	BestStreak     int64  `json:"bestStreak"`
}

func newSubmitResp(r service.SubmitResult) SubmitResp {
	return SubmitResp{
		Ok:             true,
		Correct:        r.Correct,
		Points:         r.Points,
		CorrectAnswer:  r.CorrectAnswer.String(),
		Rationale:      r.Rationale,
		TotalPoints:    r.TotalPoints,
		Applied:        r.Applied,
		AlreadyApplied: r.AlreadyApplied,
		Streak:         r.Streak,
		BestStreak:     r.BestStreak,
	}
}

type HintResp struct {
	Ok          bool   `json:"ok"`
	Label       string `json:"label"`
	Explanation string `json:"explanation"`
	TokensLeft  int64  `json:"tokensLeft"`
}

type ProfileResp struct {
	Ok          bool  `json:"ok"`
	TotalPoints int64 `json:"totalPoints"`
	Streak      int64 `json:"streak"`
	BestStreak  int64 `json:"bestStreak"`
	HintTokens  int64 `json:"hintTokens"`
}
