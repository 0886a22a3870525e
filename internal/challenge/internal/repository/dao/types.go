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

import "github.com/ecodeclub/ekit/sqlx"

// Task 题库，由内容管理维护
type Task struct {
	Id            int64  `gorm:"primaryKey;autoIncrement"`
	Channel       string `gorm:"type:varchar(32);not null"`
	Title         string `gorm:"type:varchar(255);not null"`
	Body          string `gorm:"type:text"`
	Truth         string `gorm:"type:varchar(16);comment:标准答案 phish/legit，为空时使用 is_phish"`
	IsPhish       bool
	Rationale     string                  `gorm:"type:text"`
	TimeLimitSec  int64                   `gorm:"not null;default:30"`
	PointsCorrect int64                   `gorm:"not null;default:0"`
	PointsWrong   int64                   `gorm:"not null;default:0"`
	Clues         sqlx.JsonColumn[[]Clue] `gorm:"type:text;comment:提示列表JSON"`
	Status        uint8                   `gorm:"type:tinyint unsigned;not null;default:1;index:idx_task_status;comment:1=未发布 2=已发布"`
	Ctime         int64
	Utime         int64
}

func (Task) TableName() string {
	return "challenge_tasks"
}

type Clue struct {
	Label       string `json:"label"`
	Explanation string `json:"explanation"`
}

const (
	SessionStatusOpen      uint8 = 1
	SessionStatusSubmitted uint8 = 2
	SessionStatusExpired   uint8 = 3
)

// Session 作答会话，终态之后就不再修改
type Session struct {
	Id      int64  `gorm:"primaryKey;autoIncrement"`
	Uid     int64  `gorm:"not null;index:idx_session_uid_task_status,priority:1;uniqueIndex:unq_session_open_slot,priority:1"`
	TaskId  int64  `gorm:"not null;index:idx_session_uid_task_status,priority:2;uniqueIndex:unq_session_open_slot,priority:2"`
	Status  uint8  `gorm:"type:tinyint unsigned;not null;index:idx_session_uid_task_status,priority:3;index:idx_session_status_deadline,priority:1"`
	Channel string `gorm:"type:varchar(32)"`
	// Day 打开时所在的轮次
	Day        int64 `gorm:"not null"`
	StartedAt  int64 `gorm:"not null"`
	DeadlineAt int64 `gorm:"not null;index:idx_session_status_deadline,priority:2"`
	// SubmittedAt 0 代表还没有提交
	SubmittedAt    int64  `gorm:"not null;default:0"`
	Choice         string `gorm:"type:varchar(16)"`
	IsCorrect      bool
	Points         int64
	DecisionMillis int64
	// OpenKey 打开状态下是 0，终态之后改成自己的 id。
	// 唯一索引保证同一个学员同一道题最多只有一个打开的会话
	OpenKey int64 `gorm:"not null;default:0;uniqueIndex:unq_session_open_slot,priority:3"`
	Ctime   int64
	Utime   int64
}

func (Session) TableName() string {
	return "challenge_sessions"
}

// LedgerEntry 经验值流水，唯一索引就是幂等的边界
type LedgerEntry struct {
	Id      int64  `gorm:"primaryKey;autoIncrement"`
	Uid     int64  `gorm:"not null;uniqueIndex:unq_ledger_uid_task_round,priority:1"`
	TaskId  int64  `gorm:"not null;uniqueIndex:unq_ledger_uid_task_round,priority:2"`
	Round   int64  `gorm:"not null;uniqueIndex:unq_ledger_uid_task_round,priority:3"`
	Outcome string `gorm:"type:varchar(16);not null"`
	Points  int64  `gorm:"not null"`
	Ctime   int64
}

func (LedgerEntry) TableName() string {
	return "challenge_ledger_entries"
}

// Points 经验值汇总
type Points struct {
	Id    int64 `gorm:"primaryKey;autoIncrement"`
	Uid   int64 `gorm:"not null;uniqueIndex:unq_points_uid"`
	Total int64 `gorm:"not null;default:0"`
	Ctime int64
	Utime int64
}

func (Points) TableName() string {
	return "challenge_points"
}

type Streak struct {
	Id            int64 `gorm:"primaryKey;autoIncrement"`
	Uid           int64 `gorm:"not null;uniqueIndex:unq_streak_uid"`
	Current       int64 `gorm:"not null;default:0"`
	Best          int64 `gorm:"not null;default:0"`
	LastActiveDay int64 `gorm:"not null;default:0"`
	Ctime         int64
	Utime         int64
}

func (Streak) TableName() string {
	return "challenge_streaks"
}

type HintBucket struct {
	Id           int64 `gorm:"primaryKey;autoIncrement"`
	Uid          int64 `gorm:"not null;uniqueIndex:unq_hint_uid"`
	Tokens       int64 `gorm:"not null;default:0"`
	LastResetDay int64 `gorm:"not null;default:0"`
	Ctime        int64
	Utime        int64
}

func (HintBucket) TableName() string {
	return "challenge_hint_buckets"
}

// TaskLock 老版本按题按天加锁的窗口，终态的时候顺手写一条，列表页也会读
type TaskLock struct {
	Id          int64 `gorm:"primaryKey;autoIncrement"`
	Uid         int64 `gorm:"not null;uniqueIndex:unq_lock_uid_task,priority:1"`
	TaskId      int64 `gorm:"not null;uniqueIndex:unq_lock_uid_task,priority:2"`
	LockedUntil int64 `gorm:"not null"`
	Ctime       int64
	Utime       int64
}

func (TaskLock) TableName() string {
	return "challenge_task_locks"
}

type SchemaVersion struct {
	Version int64  `gorm:"primaryKey;autoIncrement:false"`
	Name    string `gorm:"type:varchar(128)"`
	Ctime   int64
}

func (SchemaVersion) TableName() string {
	return "challenge_schema_versions"
}
