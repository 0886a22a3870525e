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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "challenge_submissions_total",
			Help: "每日挑战判题次数，按结果区分",
		},
		[]string{"outcome"},
	)
	ledgerCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "challenge_ledger_applications_total",
			Help: "经验值记账次数，applied 或者 already_applied",
		},
		[]string{"result"},
	)
)
