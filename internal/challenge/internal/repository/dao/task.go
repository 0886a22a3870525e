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

package dao

import (
	"context"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

const TaskStatusPublished uint8 = 2

// TaskDAO 题库只读
type TaskDAO interface {
	GetByID(ctx context.Context, id int64) (Task, error)
	ListPublished(ctx context.Context) ([]Task, error)
}

type GORMTaskDAO struct {
	db *egorm.Component
}

func NewGORMTaskDAO(db *egorm.Component) TaskDAO {
	return &GORMTaskDAO{db: db}
}

func (dao *GORMTaskDAO) GetByID(ctx context.Context, id int64) (Task, error) {
	var res Task
	err := dao.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, TaskStatusPublished).
		First(&res).Error
	return res, err
}

func (dao *GORMTaskDAO) ListPublished(ctx context.Context) ([]Task, error) {
	var res []Task
	err := dao.db.WithContext(ctx).
		Where("status = ?", TaskStatusPublished).
		Order("id ASC").
		Find(&res).Error
	return res, err
}
