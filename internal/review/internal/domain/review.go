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

type Review struct {
	ID    int64
	UID   int64
	SPUID int64
	// Rating 取值 1-5
	Rating  uint8
	Comment string
	Images  []string
	// Verified 用户是否真实购买过该商品
	Verified bool
	// Product 展示用的商品快照,列表场景填充
	Product Product
	Ctime   int64
	Utime   int64
}

func (r Review) ValidRating() bool {
	return r.Rating >= 1 && r.Rating <= 5
}

type Product struct {
	Name      string
	Price     int64
	Thumbnail string
}

// RatingStats 商品维度的评分汇总
type RatingStats struct {
	Average float64
	Total   int64
}
