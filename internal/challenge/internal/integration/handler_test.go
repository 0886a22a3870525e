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

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ejob"
	"github.com/safeclick/academy/internal/challenge"
	"github.com/safeclick/academy/internal/challenge/internal/errs"
	"github.com/safeclick/academy/internal/challenge/internal/event"
	"github.com/safeclick/academy/internal/challenge/internal/integration/startup"
	"github.com/safeclick/academy/internal/challenge/internal/repository/dao"
	"github.com/safeclick/academy/internal/challenge/internal/web"
	"github.com/safeclick/academy/internal/test"
	testioc "github.com/safeclick/academy/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testUID = 123

var t0 = time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type HandlerTestSuite struct {
	suite.Suite
	server    *egin.Component
	anonymous *egin.Component
	db        *egorm.Component
	q         mq.MQ
	clock     *clock
	module    *challenge.Module
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.db = testioc.InitDB()
	s.q = testioc.InitMQ()
	s.clock = &clock{now: t0}
	module, err := startup.InitModule(s.db, s.q, challenge.Config{}, s.clock.Now)
	require.NoError(s.T(), err)
	s.module = module

	// 部署的时候由迁移任务建表
	require.NoError(s.T(), module.MigrateJob.Run(ejob.Context{Ctx: context.Background()}))

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	s.server = s.newServer(testUID)
	s.anonymous = s.newServer(0)

	tasks := []dao.Task{
		{
			Id: 7, Channel: "email", Title: "账户异常", Body: "请立即验证您的账户",
			Truth: "phish", Rationale: "发件人域名仿冒", TimeLimitSec: 30,
			PointsCorrect: 6, PointsWrong: -2, Status: dao.TaskStatusPublished,
			Clues: sqlx.JsonColumn[[]dao.Clue]{Valid: true, Val: []dao.Clue{
				{Label: "发件人", Explanation: "域名少了一个字母"},
			}},
		},
		{
			Id: 8, Channel: "sms", Title: "快递通知", Body: "您的快递已到",
			TimeLimitSec: 20, PointsCorrect: 5, PointsWrong: -3, Status: dao.TaskStatusPublished,
		},
		{
			Id: 9, Channel: "voice", Title: "银行来电", Body: "客服要求提供验证码",
			IsPhish: true, TimeLimitSec: 45, PointsCorrect: 4, PointsWrong: -1, Status: dao.TaskStatusPublished,
		},
		{
			Id: 10, Channel: "web", Title: "草稿", TimeLimitSec: 30, Status: 1,
		},
	}
	require.NoError(s.T(), s.db.Create(&tasks).Error)
}

func (s *HandlerTestSuite) newServer(uid int64) *egin.Component {
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	s.module.Hdl.PrivateRoutes(server.Engine)
	return server
}

func doPost[T any](t *testing.T, server *egin.Component, path string, body any) test.Result[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) open(taskId int64) web.OpenedTask {
	res := doPost[web.OpenResp](s.T(), s.server, "/challenge/open", web.TaskReq{TaskId: taskId})
	require.True(s.T(), res.Data.Ok)
	return res.Data.Task
}

func (s *HandlerTestSuite) TestList() {
	res := doPost[web.ListResp](s.T(), s.server, "/challenge/list", nil)
	assert.Equal(s.T(), 0, res.Code)
	assert.True(s.T(), res.Data.Ok)
	assert.False(s.T(), res.Data.AllLocked)
	assert.Equal(s.T(), int64(0), res.Data.NextUnlockEpoch)
	require.Len(s.T(), res.Data.Tasks, 3)
	icons := map[int64]string{7: "mail", 8: "message", 9: "phone"}
	for _, c := range res.Data.Tasks {
		assert.Equal(s.T(), icons[c.Id], c.Icon)
		assert.False(s.T(), c.Locked)
	}
}

func (s *HandlerTestSuite) TestSubmitFlow() {
	t := s.T()
	consumer, err := s.q.Consumer(event.RewardEventName, "test")
	require.NoError(t, err)

	opened := s.open(7)
	assert.Equal(t, t0.UnixMilli(), opened.Now)
	assert.Equal(t, t0.Add(30*time.Second).UnixMilli(), opened.ExpiresAt)
	assert.Equal(t, "账户异常", opened.Title)
	assert.Equal(t, "email", opened.Channel)

	s.clock.Set(t0.Add(10 * time.Second))
	res := doPost[web.SubmitResp](t, s.server, "/challenge/submit", web.SubmitReq{
		TaskId: 7, SessionId: opened.SessionId, Choice: "PHISH",
	})
	assert.Equal(t, web.SubmitResp{
		Ok:            true,
		Correct:       true,
		Points:        6,
		CorrectAnswer: "phish",
		Rationale:     "发件人域名仿冒",
		TotalPoints:   6,
		Applied:       true,
		Streak:        1,
		BestStreak:    1,
	}, res.Data)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	var evt event.RewardEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, event.RewardEvent{
		Uid: testUID, TaskId: 7, Round: 20250614, Outcome: "correct", Points: 6, Total: 6, Streak: 1,
	}, evt)

	// 重复提交
	failed := doPost[web.Failure](t, s.server, "/challenge/submit", web.SubmitReq{
		TaskId: 7, SessionId: opened.SessionId, Choice: "phish",
	})
	assert.Equal(t, errs.Locked.Code, failed.Code)
	assert.Equal(t, web.Failure{Code: "LOCKED", Message: errs.Locked.Msg}, failed.Data)

	list := doPost[web.ListResp](t, s.server, "/challenge/list", nil)
	for _, c := range list.Data.Tasks {
		assert.Equal(t, c.Id == 7, c.Locked)
	}

	profile := doPost[web.ProfileResp](t, s.server, "/challenge/profile", nil)
	assert.Equal(t, web.ProfileResp{Ok: true, TotalPoints: 6, Streak: 1, BestStreak: 1, HintTokens: 3}, profile.Data)
}

func (s *HandlerTestSuite) TestAllLocked() {
	t := s.T()
	for _, id := range []int64{7, 8, 9} {
		opened := s.open(id)
		res := doPost[web.SubmitResp](t, s.server, "/challenge/submit", web.SubmitReq{
			TaskId: id, SessionId: opened.SessionId, Choice: "legit",
		})
		require.True(t, res.Data.Ok)
	}
	list := doPost[web.ListResp](t, s.server, "/challenge/list", nil)
	assert.True(t, list.Data.AllLocked)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC).Unix(), list.Data.NextUnlockEpoch)
}

func (s *HandlerTestSuite) TestExpired() {
	t := s.T()
	opened := s.open(7)
	s.clock.Set(t0.Add(31 * time.Second))
	failed := doPost[web.Failure](t, s.server, "/challenge/submit", web.SubmitReq{
		TaskId: 7, SessionId: opened.SessionId, Choice: "phish",
	})
	assert.Equal(t, errs.Expired.Code, failed.Code)
	assert.Equal(t, "EXPIRED", failed.Data.Code)

	failed = doPost[web.Failure](t, s.server, "/challenge/submit", web.SubmitReq{
		TaskId: 7, SessionId: opened.SessionId, Choice: "phish",
	})
	assert.Equal(t, "LOCKED", failed.Data.Code)

	var cnt int64
	require.NoError(t, s.db.Model(&dao.LedgerEntry{}).Count(&cnt).Error)
	assert.Equal(t, int64(0), cnt)
}

func (s *HandlerTestSuite) TestHint() {
	t := s.T()
	for _, want := range []int64{2, 1, 0} {
		res := doPost[web.HintResp](t, s.server, "/challenge/hint", web.TaskReq{TaskId: 7})
		assert.Equal(t, web.HintResp{
			Ok: true, Label: "发件人", Explanation: "域名少了一个字母", TokensLeft: want,
		}, res.Data)
	}
	failed := doPost[web.Failure](t, s.server, "/challenge/hint", web.TaskReq{TaskId: 7})
	assert.Equal(t, errs.NoHintTokens.Code, failed.Code)
	assert.Equal(t, web.Failure{Code: "NO_TOKENS", Message: errs.NoHintTokens.Msg}, failed.Data)
}

func (s *HandlerTestSuite) TestFailures() {
	opened := s.open(7)
	testCases := []struct {
		name   string
		server *egin.Component
		path   string
		body   any
		want   errs.ErrorCode
	}{
		{
			name:   "没有登录",
			server: s.anonymous,
			path:   "/challenge/list",
			want:   errs.Unauthorized,
		},
		{
			name:   "没有登录不能提交",
			server: s.anonymous,
			path:   "/challenge/submit",
			body:   web.SubmitReq{TaskId: 7, SessionId: opened.SessionId, Choice: "phish"},
			want:   errs.Unauthorized,
		},
		{
			name:   "请求体不是 JSON",
			server: s.server,
			path:   "/challenge/open",
			body:   "taskId=7",
			want:   errs.BadRequest,
		},
		{
			name:   "题目不存在",
			server: s.server,
			path:   "/challenge/open",
			body:   web.TaskReq{TaskId: 404},
			want:   errs.BadRequest,
		},
		{
			name:   "题目没有发布",
			server: s.server,
			path:   "/challenge/open",
			body:   web.TaskReq{TaskId: 10},
			want:   errs.BadRequest,
		},
		{
			name:   "缺少会话",
			server: s.server,
			path:   "/challenge/submit",
			body:   web.SubmitReq{TaskId: 7, Choice: "phish"},
			want:   errs.BadRequest,
		},
		{
			name:   "无法识别的选项",
			server: s.server,
			path:   "/challenge/submit",
			body:   web.SubmitReq{TaskId: 7, SessionId: opened.SessionId, Choice: "不知道"},
			want:   errs.NoChoice,
		},
		{
			name:   "会话不存在",
			server: s.server,
			path:   "/challenge/submit",
			body:   web.SubmitReq{TaskId: 7, SessionId: 10086, Choice: "phish"},
			want:   errs.SessionNotFound,
		},
		{
			name:   "题目与会话不匹配",
			server: s.server,
			path:   "/challenge/submit",
			body:   web.SubmitReq{TaskId: 8, SessionId: opened.SessionId, Choice: "phish"},
			want:   errs.TaskMismatch,
		},
		{
			name:   "题目没有提示",
			server: s.server,
			path:   "/challenge/hint",
			body:   web.TaskReq{TaskId: 8},
			want:   errs.BadRequest,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			res := doPost[web.Failure](t, tc.server, tc.path, tc.body)
			assert.Equal(t, tc.want.Code, res.Code)
			assert.Equal(t, tc.want.Msg, res.Msg)
			assert.Equal(t, web.Failure{Code: tc.want.Key, Message: tc.want.Msg}, res.Data)
		})
	}
}

func (s *HandlerTestSuite) TestExpireSessionsJob() {
	t := s.T()
	opened := s.open(7)
	s.clock.Set(t0.Add(time.Minute))
	require.NoError(t, s.module.ExpireJob.Run(context.Background()))

	var sess dao.Session
	require.NoError(t, s.db.Where("id = ?", opened.SessionId).First(&sess).Error)
	assert.Equal(t, dao.SessionStatusExpired, sess.Status)
	assert.Equal(t, "ExpireSessionsJob", s.module.ExpireJob.Name())
}
