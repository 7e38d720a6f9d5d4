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

type AddCartItemReq struct {
	SN       string `json:"sn"`
	Quantity int64  `json:"quantity"`
}

type UpdateCartItemReq struct {
	SN       string `json:"sn"`
	Quantity int64  `json:"quantity"`
}

type DeleteCartItemReq struct {
	SN string `json:"sn"`
}

type CartItem struct {
	SN       string `json:"sn"`
	SPUID    int64  `json:"spuId"`
	Name     string `json:"name"`
	Size     string `json:"size"`
	Image    string `json:"image"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
	Stock    int64  `json:"stock"`
	// Available 为 false 表示商品已下架或被删除
	Available bool  `json:"available"`
	Subtotal  int64 `json:"subtotal"`
}

type CartResp struct {
	Items []CartItem `json:"items"`
	// TotalAmount 只统计仍可售的条目,单位为分
	TotalAmount int64 `json:"totalAmount"`
}
