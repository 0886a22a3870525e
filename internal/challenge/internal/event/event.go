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

package event

const RewardEventName = "challenge_reward_events"

// RewardEvent 第一次记账成功之后发出，排行榜之类的下游订阅
type RewardEvent struct {
	Uid     int64  `json:"uid"`
	TaskId  int64  `json:"taskId"`
	Round   int64  `json:"round"`
	Outcome string `json:"outcome"`
	Points  int64  `json:"points"`
	Total   int64  `json:"total"`
	Streak  int64  `json:"streak"`
}
