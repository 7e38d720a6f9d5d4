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

package web

type Page struct {
	// Page 从 1 开始
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (p Page) OffsetLimit() (offset, limit int) {
	limit = p.Limit
	if limit <= 0 {
		limit = 10
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit, limit
}

func totalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

type ListNotificationsReq struct {
	Page
}

type UserNotification struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
	ReadAt  int64  `json:"readAt,omitempty"`
	Ctime   int64  `json:"ctime"`
}

type UserNotificationsResp struct {
	Notifications []UserNotification `json:"notifications"`
	Total         int64              `json:"total"`
	TotalPages    int64              `json:"totalPages"`
	CurrentPage   int64              `json:"currentPage"`
}

type MarkReadReq struct {
	ID int64 `json:"id"`
}

type UnreadCountResp struct {
	Count int64 `json:"count"`
}

type Notification struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	StartAt   int64  `json:"startAt"`
	EndAt     int64  `json:"endAt"`
	Global    bool   `json:"global"`
	CreatedBy int64  `json:"createdBy"`
	Ctime     int64  `json:"ctime"`
}

type SaveNotificationReq struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Message string `json:"message"`
	StartAt int64  `json:"startAt"`
	EndAt   int64  `json:"endAt"`
	// UIDs 为空时推送给全部未禁用用户
	UIDs []int64 `json:"uids"`
}

type SaveNotificationResp struct {
	ID int64 `json:"id"`
}

type NotificationIDReq struct {
	ID int64 `json:"id"`
}

type AdminListNotificationsReq struct {
	Page
	Type string `json:"type"`
}

type NotificationsResp struct {
	Notifications []Notification `json:"notifications"`
	Total         int64          `json:"total"`
	TotalPages    int64          `json:"totalPages"`
	CurrentPage   int64          `json:"currentPage"`
}
