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

package domain

const (
	TypeSystem    = "system"
	TypeOrder     = "order"
	TypePromotion = "promotion"
)

type Notification struct {
	ID      int64
	Title   string
	Type    string
	Message string
	// StartAt 通知生效时间,之前不可见也不可再修改之后的内容
	StartAt int64
	// EndAt 通知过期时间,0 表示永久有效
	EndAt int64
	// Global 为真时面向全部未禁用用户
	Global    bool
	CreatedBy int64
	Ctime     int64
	Utime     int64
}

// Published 通知是否已对用户可见
func (n Notification) Published(now int64) bool {
	return n.StartAt <= now
}

type UserNotification struct {
	ID           int64
	UID          int64
	Notification Notification
	Read         bool
	ReadAt       int64
	Ctime        int64
}
