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

type Item struct {
	ID       int64
	UID      int64
	Quantity int64
	// SKU 是展示所需的商品快照信息,由 service 聚合填充
	SKU   SKU
	Ctime int64
	Utime int64
}

type SKU struct {
	SN    string
	SPUID int64
	Name  string
	Size  string
	Image string
	// 单价,单位为分
	Price int64
	Stock int64
	// OnShelf 为 false 说明商品已下架,不可下单
	OnShelf bool
}

// Subtotal 小计,单位为分
func (i Item) Subtotal() int64 {
	return i.SKU.Price * i.Quantity
}
