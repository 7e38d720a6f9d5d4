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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartRepository struct {
	repository.CartRepository
	item     domain.Item
	itemErr  error
	items    []domain.Item
	saved    domain.Item
	quantity int64
}

func (f *fakeCartRepository) Save(ctx context.Context, item domain.Item) error {
	f.saved = item
	return nil
}

func (f *fakeCartRepository) FindItem(ctx context.Context, uid int64, skuSN string) (domain.Item, error) {
	return f.item, f.itemErr
}

func (f *fakeCartRepository) FindItems(ctx context.Context, uid int64) ([]domain.Item, error) {
	return f.items, nil
}

func (f *fakeCartRepository) UpdateQuantity(ctx context.Context, uid int64, skuSN string, quantity int64) error {
	f.quantity = quantity
	return nil
}

type fakeProductService struct {
	product.Service
	sku    product.SKU
	skuErr error
}

func (f *fakeProductService) FindSKUBySN(ctx context.Context, sn string) (product.SKU, error) {
	if f.skuErr != nil {
		return product.SKU{}, f.skuErr
	}
	sku := f.sku
	sku.SN = sn
	return sku, nil
}

func onShelfSKU(stock int64) product.SKU {
	return product.SKU{
		SPUID:  1,
		Name:   "Classic Tee",
		Size:   "M",
		Price:  25900,
		Stock:  stock,
		Status: product.StatusOnShelf,
	}
}

func TestService_AddItem(t *testing.T) {
	t.Run("首次加入", func(t *testing.T) {
		repo := &fakeCartRepository{itemErr: repository.ErrItemNotFound}
		svc := NewService(repo, &fakeProductService{sku: onShelfSKU(10)})
		err := svc.AddItem(context.Background(), 2793, "SKU001", 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), repo.saved.Quantity)
	})

	t.Run("重复加入合并数量", func(t *testing.T) {
		repo := &fakeCartRepository{item: domain.Item{Quantity: 3}}
		svc := NewService(repo, &fakeProductService{sku: onShelfSKU(10)})
		err := svc.AddItem(context.Background(), 2793, "SKU001", 2)
		require.NoError(t, err)
		assert.Equal(t, int64(5), repo.saved.Quantity)
	})

	t.Run("合并后超过库存_截到库存", func(t *testing.T) {
		repo := &fakeCartRepository{item: domain.Item{Quantity: 8}}
		svc := NewService(repo, &fakeProductService{sku: onShelfSKU(10)})
		err := svc.AddItem(context.Background(), 2793, "SKU001", 5)
		require.NoError(t, err)
		assert.Equal(t, int64(10), repo.saved.Quantity)
	})

	t.Run("非法数量", func(t *testing.T) {
		svc := NewService(&fakeCartRepository{}, &fakeProductService{sku: onShelfSKU(10)})
		err := svc.AddItem(context.Background(), 2793, "SKU001", 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("零库存", func(t *testing.T) {
		svc := NewService(&fakeCartRepository{}, &fakeProductService{sku: onShelfSKU(0)})
		err := svc.AddItem(context.Background(), 2793, "SKU001", 1)
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("商品已下架", func(t *testing.T) {
		sku := onShelfSKU(10)
		sku.Status = product.StatusOffShelf
		svc := NewService(&fakeCartRepository{}, &fakeProductService{sku: sku})
		err := svc.AddItem(context.Background(), 2793, "SKU001", 1)
		assert.ErrorIs(t, err, ErrSKUNotFound)
	})

	t.Run("查询已有条目失败_直接返回错误", func(t *testing.T) {
		findErr := errors.New("mock db error")
		repo := &fakeCartRepository{itemErr: findErr}
		svc := NewService(repo, &fakeProductService{sku: onShelfSKU(10)})
		err := svc.AddItem(context.Background(), 2793, "SKU001", 2)
		assert.ErrorIs(t, err, findErr)
		assert.Zero(t, repo.saved.Quantity)
	})
}

func TestService_UpdateQuantity(t *testing.T) {
	t.Run("更新成功", func(t *testing.T) {
		repo := &fakeCartRepository{}
		svc := NewService(repo, &fakeProductService{sku: onShelfSKU(10)})
		err := svc.UpdateQuantity(context.Background(), 2793, "SKU001", 4)
		require.NoError(t, err)
		assert.Equal(t, int64(4), repo.quantity)
	})

	t.Run("超过库存_截到库存", func(t *testing.T) {
		repo := &fakeCartRepository{}
		svc := NewService(repo, &fakeProductService{sku: onShelfSKU(3)})
		err := svc.UpdateQuantity(context.Background(), 2793, "SKU001", 99)
		require.NoError(t, err)
		assert.Equal(t, int64(3), repo.quantity)
	})
}

func TestService_List(t *testing.T) {
	t.Run("商品被删除的条目标记为不可售", func(t *testing.T) {
		repo := &fakeCartRepository{items: []domain.Item{
			{UID: 2793, Quantity: 1, SKU: domain.SKU{SN: "SKU404"}},
		}}
		svc := NewService(repo, &fakeProductService{skuErr: product.ErrSKUNotFound})
		items, err := svc.List(context.Background(), 2793)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.False(t, items[0].SKU.OnShelf)
	})
}
