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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository/dao"
)

var ErrItemNotFound = dao.ErrItemNotFound

type CartRepository interface {
	Save(ctx context.Context, item domain.Item) error
	FindItem(ctx context.Context, uid int64, skuSN string) (domain.Item, error)
	FindItems(ctx context.Context, uid int64) ([]domain.Item, error)
	UpdateQuantity(ctx context.Context, uid int64, skuSN string, quantity int64) error
	DeleteItem(ctx context.Context, uid int64, skuSN string) error
	Clear(ctx context.Context, uid int64) error
}

type cartRepository struct {
	dao dao.CartDAO
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{dao: d}
}

func (r *cartRepository) Save(ctx context.Context, item domain.Item) error {
	return r.dao.Save(ctx, r.toEntity(item))
}

func (r *cartRepository) FindItem(ctx context.Context, uid int64, skuSN string) (domain.Item, error) {
	item, err := r.dao.FindByUIDAndSN(ctx, uid, skuSN)
	if err != nil {
		return domain.Item{}, err
	}
	return r.toDomain(item), nil
}

func (r *cartRepository) FindItems(ctx context.Context, uid int64) ([]domain.Item, error) {
	items, err := r.dao.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.CartItem) domain.Item {
		return r.toDomain(src)
	}), nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, uid int64, skuSN string, quantity int64) error {
	return r.dao.UpdateQuantity(ctx, uid, skuSN, quantity)
}

func (r *cartRepository) DeleteItem(ctx context.Context, uid int64, skuSN string) error {
	return r.dao.Delete(ctx, uid, skuSN)
}

func (r *cartRepository) Clear(ctx context.Context, uid int64) error {
	return r.dao.DeleteByUID(ctx, uid)
}

func (r *cartRepository) toEntity(item domain.Item) dao.CartItem {
	return dao.CartItem{
		Id:       item.ID,
		Uid:      item.UID,
		SKUSN:    item.SKU.SN,
		Quantity: item.Quantity,
	}
}

func (r *cartRepository) toDomain(item dao.CartItem) domain.Item {
	return domain.Item{
		ID:       item.Id,
		UID:      item.Uid,
		Quantity: item.Quantity,
		SKU: domain.SKU{
			SN: item.SKUSN,
		},
		Ctime: item.Ctime,
		Utime: item.Utime,
	}
}
