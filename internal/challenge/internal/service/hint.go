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
	"context"

	"github.com/safeclick/academy/internal/challenge/internal/domain"
	"github.com/safeclick/academy/internal/challenge/internal/repository"
)

const DefaultHintDailyCap int64 = 3

// HintBudget 每人每天的提示额度，每天第一次访问的时候补满
type HintBudget interface {
	Consume(ctx context.Context, uid int64) (remaining int64, ok bool, err error)
	// Peek 只读，不会真的补满
	Peek(ctx context.Context, uid int64) (int64, error)
}

type hintBudget struct {
	repo     repository.HintRepository
	capacity int64
	now      Clock
}

func NewHintBudget(repo repository.HintRepository, capacity int64, now Clock) HintBudget {
	if capacity <= 0 {
		capacity = DefaultHintDailyCap
	}
	return &hintBudget{repo: repo, capacity: capacity, now: now}
}

func (h *hintBudget) Consume(ctx context.Context, uid int64) (int64, bool, error) {
	return h.repo.Consume(ctx, uid, domain.RoundAt(h.now()), h.capacity)
}

func (h *hintBudget) Peek(ctx context.Context, uid int64) (int64, error) {
	b, err := h.repo.Get(ctx, uid)
	if err != nil {
		return 0, err
	}
	return b.Refill(domain.RoundAt(h.now()), h.capacity).Tokens, nil
}
