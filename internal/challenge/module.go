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

package challenge

import (
	"github.com/safeclick/academy/internal/challenge/internal/event"
	"github.com/safeclick/academy/internal/challenge/internal/job"
	"github.com/safeclick/academy/internal/challenge/internal/repository/cache"
	"github.com/safeclick/academy/internal/challenge/internal/service"
	"github.com/safeclick/academy/internal/challenge/internal/web"
)

type Module struct {
	Hdl        *Handler
	Svc        Service
	ExpireJob  *ExpireSessionsJob
	MigrateJob *MigrateJob
}

type Handler = web.Handler
type Service = service.Service
type Clock = service.Clock
type TaskCache = cache.TaskCache
type ExpireSessionsJob = job.ExpireSessionsJob
type MigrateJob = job.MigrateJob
type RewardEvent = event.RewardEvent

const RewardEventName = event.RewardEventName
const MigrateJobName = job.MigrateJobName
