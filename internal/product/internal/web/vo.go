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

// Page 所有列表接口统一的分页参数,页码从1开始
type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (p Page) OffsetLimit() (offset, limit int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	return (p.Page - 1) * p.Limit, p.Limit
}

func totalPages(total int64, limit int) int64 {
	if limit < 1 {
		limit = 10
	}
	return (total + int64(limit) - 1) / int64(limit)
}

type ListProductsReq struct {
	Page
	Category string `json:"category,omitempty"`
	Target   string `json:"target,omitempty"`
	Keyword  string `json:"keyword,omitempty"`
	Sort     string `json:"sort,omitempty"` // price_asc / price_desc
}

type ListProductsResp struct {
	Total       int64     `json:"total"`
	TotalPages  int64     `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
	Products    []Product `json:"products"`
}

type ProductDetailReq struct {
	ID int64 `json:"id"`
}

type ProductDetailResp struct {
	Product Product `json:"product"`
}

type Product struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Desc      string  `json:"desc,omitempty"`
	Category  string  `json:"category,omitempty"`
	Target    string  `json:"target,omitempty"`
	Price     int64   `json:"price"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	Status    uint8   `json:"status,omitempty"`
	Colors    []Color `json:"colors,omitempty"`
}

type Color struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Images []string `json:"images,omitempty"`
	SKUs   []SKU    `json:"skus,omitempty"`
}

type SKU struct {
	SN    string `json:"sn"`
	Size  string `json:"size"`
	Price int64  `json:"price"`
	Stock int64  `json:"stock"`
}

type StockBySNReq struct {
	SN string `json:"sn"`
}

type StockBySNResp struct {
	SKU SKU `json:"sku"`
}

// SaveProductReq 管理端创建/更新商品,ID为0时创建
type SaveProductReq struct {
	Product Product `json:"product"`
}

type SaveProductResp struct {
	ID int64 `json:"id"`
}

type ProductIDReq struct {
	ID int64 `json:"id"`
}

type AddSKUReq struct {
	ColorID int64  `json:"colorID"`
	Size    string `json:"size"`
	Stock   int64  `json:"stock"`
}

type AddSKUResp struct {
	SKU SKU `json:"sku"`
}

type SetStockReq struct {
	SN    string `json:"sn"`
	Stock int64  `json:"stock"`
}

type CheckStockReq struct {
	Items []CheckStockItem `json:"items"`
}

type CheckStockItem struct {
	SN       string `json:"sn"`
	Quantity int64  `json:"quantity"`
}

type CheckStockResp struct {
	Results []StockCheckResult `json:"results"`
}

type StockCheckResult struct {
	SN        string `json:"sn"`
	Name      string `json:"name,omitempty"`
	Size      string `json:"size,omitempty"`
	Requested int64  `json:"requested"`
	Available int64  `json:"available"`
	Enough    bool   `json:"enough"`
}
