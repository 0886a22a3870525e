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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/safeclick/academy/internal/challenge/internal/service"
)

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/challenge")
	g.POST("/list", ginx.S(h.List))
	g.POST("/open", ginx.S(h.Open))
	g.POST("/submit", ginx.S(h.Submit))
	g.POST("/hint", ginx.S(h.Hint))
	g.POST("/profile", ginx.S(h.Profile))
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	if uid <= 0 {
		return unauthorizedResult, nil
	}
	board, err := h.svc.List(ctx, uid)
	if err != nil {
		return h.errorResult(err, uid)
	}
	return ginx.Result{Data: newListResp(board)}, nil
}

func (h *Handler) Open(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	if uid <= 0 {
		return unauthorizedResult, nil
	}
	var req TaskReq
	if err := ctx.ShouldBindJSON(&req); err != nil || req.TaskId <= 0 {
		return badRequestResult, nil
	}
	opened, err := h.svc.Open(ctx, uid, req.TaskId)
	if err != nil {
		return h.errorResult(err, uid)
	}
	return ginx.Result{Data: newOpenResp(opened)}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	if uid <= 0 {
		return unauthorizedResult, nil
	}
	var req SubmitReq
	if err := ctx.ShouldBindJSON(&req); err != nil || req.TaskId <= 0 || req.SessionId <= 0 {
		return badRequestResult, nil
	}
	res, err := h.svc.Submit(ctx, service.SubmitRequest{
		Uid:       uid,
		TaskId:    req.TaskId,
		SessionId: req.SessionId,
		Choice:    req.Choice,
	})
	if err != nil {
		return h.errorResult(err, uid)
	}
	if res.AlreadyApplied {
		h.logger.Info("重复提交",
			elog.Int64("uid", uid),
			elog.Int64("sid", req.SessionId))
	}
	return ginx.Result{Data: newSubmitResp(res)}, nil
}

func (h *Handler) Hint(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	if uid <= 0 {
		return unauthorizedResult, nil
	}
	var req TaskReq
	if err := ctx.ShouldBindJSON(&req); err != nil || req.TaskId <= 0 {
		return badRequestResult, nil
	}
	res, err := h.svc.Hint(ctx, uid, req.TaskId)
	if err != nil {
		return h.errorResult(err, uid)
	}
	return ginx.Result{Data: HintResp{
		Ok:          true,
		Label:       res.Clue.Label,
		Explanation: res.Clue.Explanation,
		TokensLeft:  res.TokensLeft,
	}}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	if uid <= 0 {
		return unauthorizedResult, nil
	}
	p, err := h.svc.Profile(ctx, uid)
	if err != nil {
		return h.errorResult(err, uid)
	}
	return ginx.Result{Data: ProfileResp{
		Ok:          true,
		TotalPoints: p.TotalPoints,
		Streak:      p.Streak,
		BestStreak:  p.BestStreak,
		HintTokens:  p.HintTokens,
	}}, nil
}
