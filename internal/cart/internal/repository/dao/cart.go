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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrItemNotFound = gorm.ErrRecordNotFound

type CartDAO interface {
	Save(ctx context.Context, item CartItem) error
	FindByUIDAndSN(ctx context.Context, uid int64, skuSN string) (CartItem, error)
	FindByUID(ctx context.Context, uid int64) ([]CartItem, error)
	UpdateQuantity(ctx context.Context, uid int64, skuSN string, quantity int64) error
	Delete(ctx context.Context, uid int64, skuSN string) error
	DeleteByUID(ctx context.Context, uid int64) error
}

type CartGORMDAO struct {
	db *egorm.Component
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &CartGORMDAO{db: db}
}

// Save 依赖 (uid, sku_sn) 上的唯一索引,并发重复添加时覆盖数量而不是报错
func (d *CartGORMDAO) Save(ctx context.Context, item CartItem) error {
	now := time.Now().UnixMilli()
	item.Ctime, item.Utime = now, now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}, {Name: "sku_sn"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": item.Quantity,
			"utime":    now,
		}),
	}).Create(&item).Error
}

func (d *CartGORMDAO) FindByUIDAndSN(ctx context.Context, uid int64, skuSN string) (CartItem, error) {
	var item CartItem
	err := d.db.WithContext(ctx).
		Where("uid = ? AND sku_sn = ?", uid, skuSN).
		First(&item).Error
	return item, err
}

func (d *CartGORMDAO) FindByUID(ctx context.Context, uid int64) ([]CartItem, error) {
	var items []CartItem
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Find(&items).Error
	return items, err
}

func (d *CartGORMDAO) UpdateQuantity(ctx context.Context, uid int64, skuSN string, quantity int64) error {
	result := d.db.WithContext(ctx).Model(&CartItem{}).
		Where("uid = ? AND sku_sn = ?", uid, skuSN).
		Updates(map[string]any{
			"quantity": quantity,
			"utime":    time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (d *CartGORMDAO) Delete(ctx context.Context, uid int64, skuSN string) error {
	result := d.db.WithContext(ctx).
		Where("uid = ? AND sku_sn = ?", uid, skuSN).
		Delete(&CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (d *CartGORMDAO) DeleteByUID(ctx context.Context, uid int64) error {
	return d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Delete(&CartItem{}).Error
}

type CartItem struct {
	Id       int64  `gorm:"primaryKey,autoIncrement;comment:购物车条目自增ID"`
	Uid      int64  `gorm:"not null;uniqueIndex:uniq_cart_uid_sku_sn;comment:用户ID"`
	SKUSN    string `gorm:"column:sku_sn;type:varchar(255);not null;uniqueIndex:uniq_cart_uid_sku_sn;comment:SKU序列号"`
	Quantity int64  `gorm:"not null;comment:商品数量"`
	Ctime    int64
	Utime    int64 `gorm:"index"`
}
