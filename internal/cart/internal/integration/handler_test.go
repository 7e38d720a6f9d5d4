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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/eshop/internal/cart"
	cartdao "github.com/ecodeclub/eshop/internal/cart/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/cart/internal/web"
	"github.com/ecodeclub/eshop/internal/product"
	productdao "github.com/ecodeclub/eshop/internal/product/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/test"
	testioc "github.com/ecodeclub/eshop/internal/test/ioc"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(88001)

const (
	skuMainSN  = "8801_8801_39_1"
	skuEmptySN = "8801_8801_40_1"
	skuOffSN   = "8801_8801_41_1"
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    cartdao.CartDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	pm := product.InitModule(s.db)
	m := cart.InitModule(s.db, pm)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.dao = cartdao.NewCartGORMDAO(s.db)

	now := time.Now().UnixMilli()
	err := s.db.Create(&productdao.SPU{
		Id:          8801,
		Name:        "帆布鞋",
		Description: "经典款帆布鞋",
		Category:    "shoes",
		Target:      "unisex",
		Price:       25900,
		Thumbnail:   "https://cdn.example.com/8801.png",
		Status:      2,
		Ctime:       now,
		Utime:       now,
	}).Error
	require.NoError(s.T(), err)
	err = s.db.Create(&productdao.ProductColor{
		Id:     8801,
		SPUId:  8801,
		Name:   "白色",
		Images: sqlx.JsonColumn[[]string]{Val: []string{"https://cdn.example.com/8801_white.png"}, Valid: true},
		Ctime:  now,
		Utime:  now,
	}).Error
	require.NoError(s.T(), err)
	err = s.db.Create([]*productdao.ProductSKU{
		{SN: skuMainSN, SPUId: 8801, ColorId: 8801, Size: "39", Version: 1, Stock: 10, Status: 2, Ctime: now, Utime: now},
		{SN: skuEmptySN, SPUId: 8801, ColorId: 8801, Size: "40", Version: 1, Stock: 0, Status: 2, Ctime: now, Utime: now},
		{SN: skuOffSN, SPUId: 8801, ColorId: 8801, Size: "41", Version: 1, Stock: 5, Status: 1, Ctime: now, Utime: now},
	}).Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Where("spu_id = ?", 8801).Delete(&productdao.ProductSKU{}).Error)
	require.NoError(s.T(), s.db.Where("spu_id = ?", 8801).Delete(&productdao.ProductColor{}).Error)
	require.NoError(s.T(), s.db.Where("id = ?", 8801).Delete(&productdao.SPU{}).Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `cart_items`").Error)
}

func (s *HandlerTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `cart_items`").Error)
}

func (s *HandlerTestSuite) TestAddItem() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		req      web.AddCartItemReq
		wantCode int
	}{
		{
			name:   "首次加入",
			before: func(t *testing.T) {},
			after: func(t *testing.T) {
				s.assertQuantity(t, skuMainSN, 2)
			},
			req:      web.AddCartItemReq{SN: skuMainSN, Quantity: 2},
			wantCode: 200,
		},
		{
			name: "重复加入合并数量",
			before: func(t *testing.T) {
				s.seedItem(t, skuMainSN, 3)
			},
			after: func(t *testing.T) {
				s.assertQuantity(t, skuMainSN, 5)
			},
			req:      web.AddCartItemReq{SN: skuMainSN, Quantity: 2},
			wantCode: 200,
		},
		{
			name: "超出库存按库存截断",
			before: func(t *testing.T) {
				s.seedItem(t, skuMainSN, 8)
			},
			after: func(t *testing.T) {
				s.assertQuantity(t, skuMainSN, 10)
			},
			req:      web.AddCartItemReq{SN: skuMainSN, Quantity: 5},
			wantCode: 200,
		},
		{
			name:     "非法数量",
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			req:      web.AddCartItemReq{SN: skuMainSN, Quantity: 0},
			wantCode: 500,
		},
		{
			name:     "库存为零",
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			req:      web.AddCartItemReq{SN: skuEmptySN, Quantity: 1},
			wantCode: 500,
		},
		{
			name:     "商品已下架",
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			req:      web.AddCartItemReq{SN: skuOffSN, Quantity: 1},
			wantCode: 500,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/cart/add", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := httptest.NewRecorder()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t)
			require.NoError(t, s.db.Exec("TRUNCATE TABLE `cart_items`").Error)
		})
	}
}

func (s *HandlerTestSuite) TestUpdateQuantity() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		req      web.UpdateCartItemReq
		wantCode int
	}{
		{
			name: "正常修改",
			before: func(t *testing.T) {
				s.seedItem(t, skuMainSN, 1)
			},
			after: func(t *testing.T) {
				s.assertQuantity(t, skuMainSN, 4)
			},
			req:      web.UpdateCartItemReq{SN: skuMainSN, Quantity: 4},
			wantCode: 200,
		},
		{
			name: "超出库存按库存截断",
			before: func(t *testing.T) {
				s.seedItem(t, skuMainSN, 1)
			},
			after: func(t *testing.T) {
				s.assertQuantity(t, skuMainSN, 10)
			},
			req:      web.UpdateCartItemReq{SN: skuMainSN, Quantity: 99},
			wantCode: 200,
		},
		{
			name:     "购物车中没有该商品",
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			req:      web.UpdateCartItemReq{SN: skuMainSN, Quantity: 2},
			wantCode: 500,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/cart/update", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := httptest.NewRecorder()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t)
			require.NoError(t, s.db.Exec("TRUNCATE TABLE `cart_items`").Error)
		})
	}
}

func (s *HandlerTestSuite) TestRemoveItem() {
	t := s.T()
	s.seedItem(t, skuMainSN, 2)
	req, err := http.NewRequest(http.MethodPost,
		"/cart/delete", iox.NewJSONReader(web.DeleteCartItemReq{SN: skuMainSN}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err = s.dao.FindByUIDAndSN(ctx, uid, skuMainSN)
	assert.ErrorIs(t, err, cartdao.ErrItemNotFound)

	// 再删一次应该报错
	req, err = http.NewRequest(http.MethodPost,
		"/cart/delete", iox.NewJSONReader(web.DeleteCartItemReq{SN: skuMainSN}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder = httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
}

func (s *HandlerTestSuite) TestList() {
	t := s.T()
	s.seedItem(t, skuMainSN, 2)
	// 对应的商品已经被删除,条目保留但标记为不可售
	s.seedItem(t, "9999_1_9_1", 1)
	req, err := http.NewRequest(http.MethodPost,
		"/cart/list", iox.NewJSONReader(nil))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	var resp test.Result[web.CartResp]
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	require.Len(t, resp.Data.Items, 2)
	assert.Equal(t, web.CartItem{
		SN:       "9999_1_9_1",
		Quantity: 1,
	}, resp.Data.Items[0])
	assert.Equal(t, web.CartItem{
		SN:        skuMainSN,
		SPUID:     8801,
		Name:      "帆布鞋",
		Size:      "39",
		Image:     "https://cdn.example.com/8801.png",
		Price:     25900,
		Quantity:  2,
		Stock:     10,
		Available: true,
		Subtotal:  51800,
	}, resp.Data.Items[1])
	assert.Equal(t, int64(51800), resp.Data.TotalAmount)
}

func (s *HandlerTestSuite) TestClear() {
	t := s.T()
	s.seedItem(t, skuMainSN, 2)
	s.seedItem(t, skuEmptySN, 1)
	req, err := http.NewRequest(http.MethodPost,
		"/cart/clear", iox.NewJSONReader(nil))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	items, err := s.dao.FindByUID(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func (s *HandlerTestSuite) seedItem(t *testing.T, sn string, quantity int64) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.dao.Save(ctx, cartdao.CartItem{
		Uid:      uid,
		SKUSN:    sn,
		Quantity: quantity,
	}))
}

func (s *HandlerTestSuite) assertQuantity(t *testing.T, sn string, want int64) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	item, err := s.dao.FindByUIDAndSN(ctx, uid, sn)
	require.NoError(t, err)
	assert.Equal(t, want, item.Quantity)
}
