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

type SaveReviewReq struct {
	SPUID   int64    `json:"spuId"`
	Rating  uint8    `json:"rating"`
	Comment string   `json:"comment"`
	Images  []string `json:"images"`
}

type SaveReviewResp struct {
	ID int64 `json:"id"`
}

type DeleteReviewReq struct {
	ID int64 `json:"id"`
}

type ListReviewsReq struct {
	Page
	SPUID int64 `json:"spuId"`
}

type Review struct {
	ID       int64    `json:"id"`
	SPUID    int64    `json:"spuId"`
	Rating   uint8    `json:"rating"`
	Comment  string   `json:"comment"`
	Images   []string `json:"images,omitempty"`
	Verified bool     `json:"verified"`
	// 商品快照,个人列表与管理端列表场景填充
	ProductName  string `json:"productName,omitempty"`
	ProductPrice int64  `json:"productPrice,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	Ctime        int64  `json:"ctime"`
}

type ReviewsResp struct {
	Reviews     []Review `json:"reviews"`
	Total       int64    `json:"total"`
	TotalPages  int64    `json:"totalPages"`
	CurrentPage int64    `json:"currentPage"`
	// AvgRating 商品维度的平均评分,按商品查询时返回
	AvgRating float64 `json:"avgRating,omitempty"`
}

type MineReviewsReq struct {
	Page
}

type AdminListReviewsReq struct {
	Page
}
