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

import "github.com/safeclick/academy/internal/challenge/internal/domain"

const DefaultPointsLimit int64 = 10

// Grader 纯函数，不碰任何状态
type Grader struct {
	limit int64
}

func NewGrader(limit int64) *Grader {
	if limit <= 0 {
		limit = DefaultPointsLimit
	}
	return &Grader{limit: limit}
}

// Grade 归一化自由文本之后判题
func (g *Grader) Grade(raw string, task domain.Task) (domain.Grade, error) {
	c, err := domain.ParseChoice(raw)
	if err != nil {
		return domain.Grade{}, err
	}
	return g.GradeChoice(c, task), nil
}

// GradeChoice 超时永远算错并且不给分，不管题目怎么配置
func (g *Grader) GradeChoice(c domain.Choice, task domain.Task) domain.Grade {
	if c == domain.ChoiceTimeout {
		return domain.Grade{Choice: c}
	}
	correct := c == task.Answer()
	points := task.PointsWrong
	if correct {
		points = task.PointsCorrect
	}
	return domain.Grade{
		Choice:  c,
		Correct: correct,
		Points:  g.clamp(points),
	}
}

func (g *Grader) clamp(points int64) int64 {
	return max(-g.limit, min(g.limit, points))
}
