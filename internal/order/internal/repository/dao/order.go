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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = gorm.ErrRecordNotFound
	// ErrStatusConflict 条件更新未命中,说明订单状态已被并发修改
	ErrStatusConflict = errors.New("订单状态已变更")
)

type OrderDAO interface {
	// CreateOrder 在单个事务中写入订单及其明细
	CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error)
	FindByUIDAndID(ctx context.Context, uid, id int64) (Order, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int, status uint8) ([]Order, error)
	CountByUID(ctx context.Context, uid int64, status uint8) (int64, error)
	List(ctx context.Context, offset, limit int, status uint8, keyword string) ([]Order, error)
	Count(ctx context.Context, status uint8, keyword string) (int64, error)
	// DeleteOrder 删除订单及其明细,仅供下单补偿路径使用
	DeleteOrder(ctx context.Context, id int64) error
	// UpdateStatus 以原状态为条件更新,并发流转时只有一个调用方会成功
	UpdateStatus(ctx context.Context, id int64, from, to uint8) error
	// MarkCancelled 等价于 UpdateStatus 到已取消,同时记录取消时间
	MarkCancelled(ctx context.Context, id int64, from uint8) error
	FindExpiredPending(ctx context.Context, offset, limit int, ctime int64) ([]Order, error)
	CountExpiredPending(ctx context.Context, ctime int64) (int64, error)
	// HasPurchasedSPU 判断用户是否存在处于指定状态的、包含该SPU的订单
	HasPurchasedSPU(ctx context.Context, uid, spuID int64, statuses []uint8) (bool, error)
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		order.Ctime, order.Utime = now, now
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = order.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		return tx.Create(&items).Error
	})
	return order.Id, err
}

func (d *OrderGORMDAO) FindByUIDAndID(ctx context.Context, uid, id int64) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("uid = ? AND id = ?", uid, id).First(&o).Error
	return o, err
}

func (d *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return o, err
}

func (d *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&o).Error
	return o, err
}

func (d *OrderGORMDAO) FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var items []OrderItem
	err := d.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (d *OrderGORMDAO) ListByUID(ctx context.Context, uid int64, offset, limit int, status uint8) ([]Order, error) {
	var os []Order
	query := d.db.WithContext(ctx).Where("uid = ?", uid)
	if status > 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Offset(offset).Limit(limit).Order("id DESC").Find(&os).Error
	return os, err
}

func (d *OrderGORMDAO) CountByUID(ctx context.Context, uid int64, status uint8) (int64, error) {
	var count int64
	query := d.db.WithContext(ctx).Model(&Order{}).Where("uid = ?", uid)
	if status > 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}

func (d *OrderGORMDAO) List(ctx context.Context, offset, limit int, status uint8, keyword string) ([]Order, error) {
	var os []Order
	query := d.db.WithContext(ctx)
	if status > 0 {
		query = query.Where("status = ?", status)
	}
	if keyword != "" {
		query = query.Where("sn LIKE ? OR fullname LIKE ? OR phone LIKE ?",
			"%"+keyword+"%", "%"+keyword+"%", "%"+keyword+"%")
	}
	err := query.Offset(offset).Limit(limit).Order("id DESC").Find(&os).Error
	return os, err
}

func (d *OrderGORMDAO) Count(ctx context.Context, status uint8, keyword string) (int64, error) {
	var count int64
	query := d.db.WithContext(ctx).Model(&Order{})
	if status > 0 {
		query = query.Where("status = ?", status)
	}
	if keyword != "" {
		query = query.Where("sn LIKE ? OR fullname LIKE ? OR phone LIKE ?",
			"%"+keyword+"%", "%"+keyword+"%", "%"+keyword+"%")
	}
	err := query.Count(&count).Error
	return count, err
}

func (d *OrderGORMDAO) DeleteOrder(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Order{}).Error
	})
}

func (d *OrderGORMDAO) UpdateStatus(ctx context.Context, id int64, from, to uint8) error {
	result := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (d *OrderGORMDAO) MarkCancelled(ctx context.Context, id int64, from uint8) error {
	now := time.Now().UnixMilli()
	result := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":       OrderStatusCancelled,
			"cancelled_at": now,
			"utime":        now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (d *OrderGORMDAO) FindExpiredPending(ctx context.Context, offset, limit int, ctime int64) ([]Order, error) {
	var os []Order
	err := d.db.WithContext(ctx).
		Where("status = ? AND ctime < ?", OrderStatusPending, ctime).
		Offset(offset).Limit(limit).Order("id ASC").
		Find(&os).Error
	return os, err
}

func (d *OrderGORMDAO) CountExpiredPending(ctx context.Context, ctime int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("status = ? AND ctime < ?", OrderStatusPending, ctime).
		Count(&count).Error
	return count, err
}

func (d *OrderGORMDAO) HasPurchasedSPU(ctx context.Context, uid, spuID int64, statuses []uint8) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&OrderItem{}).
		Joins("JOIN `orders` ON `orders`.id = `order_items`.order_id").
		Where("`orders`.uid = ? AND `order_items`.spu_id = ? AND `orders`.status IN ?", uid, spuID, statuses).
		Count(&count).Error
	return count > 0, err
}

const (
	OrderStatusPending   uint8 = 1
	OrderStatusCancelled uint8 = 5
)

type Order struct {
	Id           int64  `gorm:"primaryKey,autoIncrement;comment:订单自增ID"`
	SN           string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	Uid          int64  `gorm:"not null;index:idx_order_uid;comment:用户ID"`
	Fullname     string `gorm:"type:varchar(255);not null;comment:收件人姓名"`
	Phone        string `gorm:"type:varchar(64);not null;comment:收件人电话"`
	Address      string `gorm:"type:varchar(512);not null;comment:收件地址"`
	TotalPrice   int64  `gorm:"not null;comment:折前总价,单位为分"`
	PaymentPrice int64  `gorm:"not null;comment:折后应付,单位为分"`
	Discount     int64  `gorm:"not null;default:0;comment:折扣金额,单位为分"`
	UserCouponId int64  `gorm:"not null;default:0;index:idx_order_user_coupon_id;comment:使用的用户优惠券ID,0表示未用券"`
	Status       uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_order_status;comment:订单状态 1=待确认 2=已确认 3=已发货 4=已送达 5=已取消"`
	CancelledAt  int64  `gorm:"not null;default:0;comment:取消时间"`
	Ctime        int64
	Utime        int64 `gorm:"index"`
}

type OrderItem struct {
	Id       int64  `gorm:"primaryKey,autoIncrement;comment:订单明细自增ID"`
	OrderId  int64  `gorm:"not null;index:idx_order_item_order_id;comment:订单ID"`
	SPUId    int64  `gorm:"column:spu_id;not null;comment:SPU ID"`
	SKUSN    string `gorm:"column:sku_sn;type:varchar(255);not null;comment:SKU序列号"`
	Name     string `gorm:"type:varchar(255);not null;comment:商品名称快照"`
	Size     string `gorm:"type:varchar(64);not null;comment:尺码"`
	Image    string `gorm:"type:varchar(512);not null;comment:商品图快照"`
	Price    int64  `gorm:"not null;comment:下单时单价,单位为分"`
	Quantity int64  `gorm:"not null;comment:购买数量"`
	Ctime    int64
	Utime    int64 `gorm:"index"`
}
