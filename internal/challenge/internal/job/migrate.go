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
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ejob"
	"github.com/safeclick/academy/internal/challenge/internal/repository/dao"
)

const MigrateJobName = "challenge_migrate"

// MigrateJob 部署的时候执行 --job=challenge_migrate，处理请求的时候从来不建表
type MigrateJob struct {
	db *egorm.Component
}

func NewMigrateJob(db *egorm.Component) *MigrateJob {
	return &MigrateJob{db: db}
}

func (j *MigrateJob) Run(ctx ejob.Context) error {
	versions, err := dao.Migrate(ctx.Ctx, j.db)
	if err != nil {
		return err
	}
	elog.DefaultLogger.Info("数据库迁移完成", elog.Any("versions", versions))
	return nil
}

func (j *MigrateJob) Build() ejob.Ejob {
	return ejob.Job(MigrateJobName, j.Run)
}
