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

package job

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/safeclick/academy/internal/challenge/internal/service"
)

var _ ecron.NamedJob = (*ExpireSessionsJob)(nil)

// ExpireSessionsJob 把已经过了截止时间但是没有人提交的会话标记为超时。
// 提交和打开的时候也会检查截止时间，这里只是让数据尽快收敛
type ExpireSessionsJob struct {
	sessions service.SessionStore
	limit    int
	// maxBatches 防止一次跑太久
	maxBatches int
}

func NewExpireSessionsJob(sessions service.SessionStore, limit, maxBatches int) *ExpireSessionsJob {
	return &ExpireSessionsJob{
		sessions:   sessions,
		limit:      limit,
		maxBatches: maxBatches,
	}
}

func (j *ExpireSessionsJob) Name() string {
	return "ExpireSessionsJob"
}

func (j *ExpireSessionsJob) Run(ctx context.Context) error {
	total := 0
	for i := 0; i < j.maxBatches; i++ {
		cnt, err := j.sessions.ExpireOverdue(ctx, j.limit)
		if err != nil {
			return fmt.Errorf("标记超时会话失败: %w", err)
		}
		total += cnt
		if cnt < j.limit {
			break
		}
	}
	elog.DefaultLogger.Debug("超时会话处理完毕", elog.Int("cnt", total))
	return nil
}
