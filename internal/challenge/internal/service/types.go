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
	"errors"
	"time"

	"github.com/safeclick/academy/internal/challenge/internal/domain"
	"github.com/safeclick/academy/internal/challenge/internal/repository"
)

var (
	ErrSessionNotFound = errors.New("作答会话不存在")
	ErrTaskMismatch    = errors.New("作答会话与题目不匹配")
	ErrSessionExpired  = errors.New("作答已超时")
	ErrSessionLocked   = errors.New("题目今天已经锁定")
	ErrNoChoice        = domain.ErrNoChoice
	ErrTaskNotFound    = repository.ErrTaskNotFound
	ErrTaskNotAssigned = errors.New("题目不在今天的挑战里")
	ErrNoHintTokens    = errors.New("提示次数已经用完")
	ErrNoClue          = errors.New("题目没有提示")
)

// Clock 所有截止时间都用服务端时钟判断，测试里替换
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}
