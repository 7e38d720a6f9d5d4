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

type Profile struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Fullname string `json:"fullname"`
	Gender   string `json:"gender"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
	Ctime    int64  `json:"ctime,omitempty"`
}

type UpdateProfileReq struct {
	Fullname string `json:"fullname"`
	Gender   string `json:"gender"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
}

type ChangePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ListUsersReq struct {
	Page
	Keyword string `json:"keyword"`
	Role    string `json:"role"`
}

type UsersResp struct {
	Users       []Profile `json:"users"`
	Total       int64     `json:"total"`
	TotalPages  int64     `json:"totalPages"`
	CurrentPage int64     `json:"currentPage"`
}

type SaveUserReq struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
	Gender   string `json:"gender"`
	Role     string `json:"role"`
}

type SaveUserResp struct {
	ID int64 `json:"id"`
}

type ToggleStatusReq struct {
	ID       int64 `json:"id"`
	Disabled bool  `json:"disabled"`
}
