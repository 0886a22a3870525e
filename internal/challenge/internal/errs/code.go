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

package errs

var (
	SystemError     = ErrorCode{Code: 521001, Key: "INTERNAL", Msg: "系统错误"}
	Unauthorized    = ErrorCode{Code: 521002, Key: "AUTH", Msg: "未登录"}
	BadRequest      = ErrorCode{Code: 521003, Key: "BAD_REQ", Msg: "请求参数错误"}
	SessionNotFound = ErrorCode{Code: 521004, Key: "SESSION_NOT_FOUND", Msg: "作答会话不存在"}
	TaskMismatch    = ErrorCode{Code: 521005, Key: "TASK_MISMATCH", Msg: "作答会话与题目不匹配"}
	Expired         = ErrorCode{Code: 521006, Key: "EXPIRED", Msg: "作答已超时"}
	Locked          = ErrorCode{Code: 521007, Key: "LOCKED", Msg: "今天这道题已经完成"}
	NoChoice        = ErrorCode{Code: 521008, Key: "NO_CHOICE", Msg: "请选择 phish 或者 legit"}
	NoHintTokens    = ErrorCode{Code: 521009, Key: "NO_TOKENS", Msg: "今天的提示次数已经用完"}
)

// ErrorCode Code 是前端用来区分的数字错误码，Key 是对外约定的字符串错误码
type ErrorCode struct {
	Code int
	Key  string
	Msg  string
}
