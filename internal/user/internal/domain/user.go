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
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID       int64
	Email    string
	Phone    string
	Fullname string
	Gender   string
	Avatar   string
	// Password 仅在写入路径携带,读取路径不填充
	Password string
	Role     string
	Disabled bool
	Ctime    int64
	Utime    int64
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
