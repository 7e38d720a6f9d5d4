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

	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository"
	"github.com/ecodeclub/eshop/internal/product"
)

var (
	ErrItemNotFound      = errors.New("购物车中没有该商品")
	ErrInvalidQuantity   = errors.New("非法的商品数量")
	ErrSKUNotFound       = product.ErrSKUNotFound
	ErrInsufficientStock = product.ErrInsufficientStock
)

type Service interface {
	AddItem(ctx context.Context, uid int64, skuSN string, quantity int64) error
	UpdateQuantity(ctx context.Context, uid int64, skuSN string, quantity int64) error
	RemoveItem(ctx context.Context, uid int64, skuSN string) error
	Clear(ctx context.Context, uid int64) error
	// List 返回聚合了商品快照信息的购物车条目
	List(ctx context.Context, uid int64) ([]domain.Item, error)
}

type service struct {
	repo       repository.CartRepository
	productSvc product.Service
}

func NewService(repo repository.CartRepository, productSvc product.Service) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
	}
}

// AddItem 商品已在购物车中时合并数量,数量上限为当前库存
func (s *service) AddItem(ctx context.Context, uid int64, skuSN string, quantity int64) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	sku, err := s.findOnShelfSKU(ctx, skuSN)
	if err != nil {
		return err
	}
	if sku.Stock < 1 {
		return ErrInsufficientStock
	}
	target := quantity
	item, err := s.repo.FindItem(ctx, uid, skuSN)
	switch {
	case err == nil:
		target += item.Quantity
	case errors.Is(err, repository.ErrItemNotFound):
		// 首次加入
	default:
		return err
	}
	if target > sku.Stock {
		target = sku.Stock
	}
	return s.repo.Save(ctx, domain.Item{
		UID:      uid,
		Quantity: target,
		SKU:      domain.SKU{SN: skuSN},
	})
}

func (s *service) UpdateQuantity(ctx context.Context, uid int64, skuSN string, quantity int64) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	sku, err := s.findOnShelfSKU(ctx, skuSN)
	if err != nil {
		return err
	}
	if quantity > sku.Stock {
		quantity = sku.Stock
	}
	if quantity < 1 {
		return ErrInsufficientStock
	}
	err = s.repo.UpdateQuantity(ctx, uid, skuSN, quantity)
	if errors.Is(err, repository.ErrItemNotFound) {
		return ErrItemNotFound
	}
	return err
}

func (s *service) RemoveItem(ctx context.Context, uid int64, skuSN string) error {
	err := s.repo.DeleteItem(ctx, uid, skuSN)
	if errors.Is(err, repository.ErrItemNotFound) {
		return ErrItemNotFound
	}
	return err
}

func (s *service) Clear(ctx context.Context, uid int64) error {
	return s.repo.Clear(ctx, uid)
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Item, error) {
	items, err := s.repo.FindItems(ctx, uid)
	if err != nil {
		return nil, err
	}
	for i := range items {
		sku, err := s.productSvc.FindSKUBySN(ctx, items[i].SKU.SN)
		if err != nil {
			if errors.Is(err, product.ErrSKUNotFound) {
				// 商品已被删除,条目保留但标记为不可售
				items[i].SKU.OnShelf = false
				continue
			}
			return nil, err
		}
		items[i].SKU = domain.SKU{
			SN:      sku.SN,
			SPUID:   sku.SPUID,
			Name:    sku.Name,
			Size:    sku.Size,
			Image:   sku.Image,
			Price:   sku.Price,
			Stock:   sku.Stock,
			OnShelf: sku.OnShelf(),
		}
	}
	return items, nil
}

func (s *service) findOnShelfSKU(ctx context.Context, sn string) (product.SKU, error) {
	sku, err := s.productSvc.FindSKUBySN(ctx, sn)
	if err != nil {
		if errors.Is(err, product.ErrSKUNotFound) {
			return product.SKU{}, ErrSKUNotFound
		}
		return product.SKU{}, err
	}
	if !sku.OnShelf() {
		return product.SKU{}, ErrSKUNotFound
	}
	return sku, nil
}
