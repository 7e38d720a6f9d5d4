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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusOffShelf Status = 1 // 下架,软删除
	StatusOnShelf  Status = 2 // 上架
)

type SPU struct {
	ID        int64
	Name      string
	Desc      string
	Category  string
	Target    string
	Price     int64
	Thumbnail string
	Status    Status
	Colors    []Color
	Ctime     int64
	Utime     int64
}

type Color struct {
	ID     int64
	SPUID  int64
	Name   string
	Images []string
	SKUs   []SKU
}

// SKU 对应一个"商品+颜色+尺码"的可售卖库存单元
// SN 格式为 productID_colorID_size_version
type SKU struct {
	ID      int64
	SN      string
	SPUID   int64
	ColorID int64
	Size    string
	Version int64
	// Price Name Image 冗余自所属SPU, 供下单与购物车展示时快照
	Price  int64
	Name   string
	Image  string
	Stock  int64
	Status Status
}

// OnShelf SPU下架时其下SKU也视为不可售
func (s SKU) OnShelf() bool {
	return s.Status == StatusOnShelf
}

// StockQuery 批量校验库存的查询条件
type StockQuery struct {
	SN       string
	Quantity int64
}

type StockCheckResult struct {
	SN        string
	Name      string
	Size      string
	Requested int64
	Available int64
	Enough    bool
}

// SPUFilter 商品列表查询条件
type SPUFilter struct {
	Category string
	Target   string
	Keyword  string
	// PriceDesc 为true时按价格降序,否则默认按创建时间降序
	PriceAsc  bool
	PriceDesc bool
	// IncludeOffShelf 仅管理端使用
	IncludeOffShelf bool
}
