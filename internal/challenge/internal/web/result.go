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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/gotomicro/ego/core/elog"
	"github.com/safeclick/academy/internal/challenge/internal/errs"
	"github.com/safeclick/academy/internal/challenge/internal/service"
)

// Failure 所有失败的 data 都是这个形状
type Failure struct {
	Ok      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func failResult(code errs.ErrorCode) ginx.Result {
	return ginx.Result{
		Code: code.Code,
		Msg:  code.Msg,
		Data: Failure{Code: code.Key, Message: code.Msg},
	}
}

var (
	systemErrorResult  = failResult(errs.SystemError)
	unauthorizedResult = failResult(errs.Unauthorized)
	badRequestResult   = failResult(errs.BadRequest)
)

// errorResult 状态机相关的错误都是客户端可以处理的正常结果。
// 系统错误在这里记录日志，对外统一返回 INTERNAL，不让 error 继续往外传
func (h *Handler) errorResult(err error, uid int64) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrNoChoice):
		return failResult(errs.NoChoice), nil
	case errors.Is(err, service.ErrSessionNotFound):
		return failResult(errs.SessionNotFound), nil
	case errors.Is(err, service.ErrTaskMismatch):
		return failResult(errs.TaskMismatch), nil
	case errors.Is(err, service.ErrSessionExpired):
		return failResult(errs.Expired), nil
	case errors.Is(err, service.ErrSessionLocked):
		return failResult(errs.Locked), nil
	case errors.Is(err, service.ErrNoHintTokens):
		return failResult(errs.NoHintTokens), nil
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, service.ErrTaskNotAssigned),
		errors.Is(err, service.ErrNoClue):
		return badRequestResult, nil
	default:
		h.logger.Error("每日挑战系统错误",
			elog.FieldErr(err),
			elog.Int64("uid", uid))
		return systemErrorResult, nil
	}
}
