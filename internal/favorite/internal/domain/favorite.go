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

type Favorite struct {
	ID    int64
	UID   int64
	SPUID int64
	Note  string
	// Product 是展示所需的商品快照,由 service 聚合填充
	Product Product
	Ctime   int64
	Utime   int64
}

type Product struct {
	Name      string
	Category  string
	Price     int64
	Thumbnail string
	// OnShelf 为 false 表示商品已下架或被删除
	OnShelf bool
}
