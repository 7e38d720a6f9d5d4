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
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrCouponNotFound     = gorm.ErrRecordNotFound
	ErrUserCouponNotFound = gorm.ErrRecordNotFound
	ErrDuplicateCode      = errors.New("优惠券码已存在")
	ErrDuplicateGrant     = errors.New("该用户已持有此优惠券")
	ErrCouponInUse        = errors.New("优惠券已被领取")
	ErrUsageExhausted     = errors.New("优惠券用量已耗尽")
	ErrUserCouponUsed     = errors.New("优惠券已被使用")
)

type CouponDAO interface {
	CreateCoupon(ctx context.Context, c Coupon) (int64, error)
	UpdateCoupon(ctx context.Context, c Coupon) error
	DeleteCoupon(ctx context.Context, id int64) error
	FindCouponByID(ctx context.Context, id int64) (Coupon, error)
	FindCouponByCode(ctx context.Context, code string) (Coupon, error)
	ListCoupons(ctx context.Context, offset, limit int, keyword string) ([]Coupon, error)
	CountCoupons(ctx context.Context, keyword string) (int64, error)

	GrantUserCoupon(ctx context.Context, uc UserCoupon) (int64, error)
	CancelUserCoupon(ctx context.Context, id int64) error
	// UpdateUserCoupon 管理端修正剩余次数、过期时间与状态
	UpdateUserCoupon(ctx context.Context, uc UserCoupon) error
	FindUserCouponByID(ctx context.Context, id int64) (UserCoupon, error)
	FindUserCouponByUIDAndCouponID(ctx context.Context, uid, couponID int64) (UserCoupon, error)
	FindUserCouponsByUID(ctx context.Context, uid int64) ([]UserCoupon, error)

	// CommitUsage 在单个事务中完成用量扣减:
	// 个人剩余次数与全局已用次数均为条件更新,并发下不会超扣
	CommitUsage(ctx context.Context, userCouponID, uid, orderID, discount int64) error
	// RestoreUsage 撤销一次用量扣减,个人剩余次数封顶于每用户上限
	RestoreUsage(ctx context.Context, userCouponID, uid, orderID int64) error
	FindUsageLogsByUID(ctx context.Context, uid int64) ([]CouponUsageLog, error)
	CountUsageLogs(ctx context.Context, userCouponID int64) (int64, error)
}

type CouponGORMDAO struct {
	db *egorm.Component
}

func NewCouponGORMDAO(db *egorm.Component) CouponDAO {
	return &CouponGORMDAO{db: db}
}

func (d *CouponGORMDAO) CreateCoupon(ctx context.Context, c Coupon) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := d.db.WithContext(ctx).Create(&c).Error
	if isDuplicateKeyError(err) {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateCode, c.Code)
	}
	return c.Id, err
}

func (d *CouponGORMDAO) UpdateCoupon(ctx context.Context, c Coupon) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		granted, err := d.grantedCount(tx, c.Id)
		if err != nil {
			return err
		}
		if granted > 0 {
			return fmt.Errorf("%w: id=%d", ErrCouponInUse, c.Id)
		}
		result := tx.Model(&Coupon{}).Where("id = ?", c.Id).
			Updates(map[string]any{
				"code":               c.Code,
				"name":               c.Name,
				"type":               c.Type,
				"value":              c.Value,
				"min_order_value":    c.MinOrderValue,
				"max_discount":       c.MaxDiscount,
				"start_at":           c.StartAt,
				"end_at":             c.EndAt,
				"max_usage":          c.MaxUsage,
				"max_usage_per_user": c.MaxUsagePerUser,
				"status":             c.Status,
				"utime":              time.Now().UnixMilli(),
			})
		if result.Error != nil {
			if isDuplicateKeyError(result.Error) {
				return fmt.Errorf("%w: %s", ErrDuplicateCode, c.Code)
			}
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: id=%d", ErrCouponNotFound, c.Id)
		}
		return nil
	})
}

func (d *CouponGORMDAO) DeleteCoupon(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		granted, err := d.grantedCount(tx, id)
		if err != nil {
			return err
		}
		if granted > 0 {
			return fmt.Errorf("%w: id=%d", ErrCouponInUse, id)
		}
		result := tx.Where("id = ?", id).Delete(&Coupon{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: id=%d", ErrCouponNotFound, id)
		}
		return nil
	})
}

func (d *CouponGORMDAO) grantedCount(tx *gorm.DB, couponID int64) (int64, error) {
	var count int64
	err := tx.Model(&UserCoupon{}).Where("coupon_id = ?", couponID).Count(&count).Error
	return count, err
}

func (d *CouponGORMDAO) FindCouponByID(ctx context.Context, id int64) (Coupon, error) {
	var c Coupon
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (d *CouponGORMDAO) FindCouponByCode(ctx context.Context, code string) (Coupon, error) {
	var c Coupon
	err := d.db.WithContext(ctx).Where("code = ?", code).First(&c).Error
	return c, err
}

func (d *CouponGORMDAO) ListCoupons(ctx context.Context, offset, limit int, keyword string) ([]Coupon, error) {
	var cs []Coupon
	query := d.db.WithContext(ctx)
	if keyword != "" {
		query = query.Where("code LIKE ? OR name LIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}
	err := query.Offset(offset).Limit(limit).Order("id DESC").Find(&cs).Error
	return cs, err
}

func (d *CouponGORMDAO) CountCoupons(ctx context.Context, keyword string) (int64, error) {
	var count int64
	query := d.db.WithContext(ctx).Model(&Coupon{})
	if keyword != "" {
		query = query.Where("code LIKE ? OR name LIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}
	err := query.Count(&count).Error
	return count, err
}

func (d *CouponGORMDAO) GrantUserCoupon(ctx context.Context, uc UserCoupon) (int64, error) {
	now := time.Now().UnixMilli()
	uc.Ctime, uc.Utime = now, now
	err := d.db.WithContext(ctx).Create(&uc).Error
	if isDuplicateKeyError(err) {
		return 0, fmt.Errorf("%w: uid=%d, coupon=%d", ErrDuplicateGrant, uc.Uid, uc.CouponId)
	}
	return uc.Id, err
}

func (d *CouponGORMDAO) CancelUserCoupon(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var used int64
		err := tx.Model(&CouponUsageLog{}).
			Where("user_coupon_id = ? AND action = ?", id, UsageActionUsed).
			Count(&used).Error
		if err != nil {
			return err
		}
		if used > 0 {
			return fmt.Errorf("%w: id=%d", ErrUserCouponUsed, id)
		}
		result := tx.Model(&UserCoupon{}).
			Where("id = ? AND status = ?", id, UserCouponStatusActive).
			Updates(map[string]any{
				"status": UserCouponStatusCancelled,
				"utime":  time.Now().UnixMilli(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: id=%d", ErrUserCouponNotFound, id)
		}
		return nil
	})
}

func (d *CouponGORMDAO) UpdateUserCoupon(ctx context.Context, uc UserCoupon) error {
	result := d.db.WithContext(ctx).Model(&UserCoupon{}).
		Where("id = ?", uc.Id).
		Updates(map[string]any{
			"usage_left": uc.UsageLeft,
			"expire_at":  uc.ExpireAt,
			"status":     uc.Status,
			"utime":      time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id=%d", ErrUserCouponNotFound, uc.Id)
	}
	return nil
}

func (d *CouponGORMDAO) FindUserCouponByID(ctx context.Context, id int64) (UserCoupon, error) {
	var uc UserCoupon
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&uc).Error
	return uc, err
}

func (d *CouponGORMDAO) FindUserCouponByUIDAndCouponID(ctx context.Context, uid, couponID int64) (UserCoupon, error) {
	var uc UserCoupon
	err := d.db.WithContext(ctx).
		Where("uid = ? AND coupon_id = ?", uid, couponID).
		First(&uc).Error
	return uc, err
}

func (d *CouponGORMDAO) FindUserCouponsByUID(ctx context.Context, uid int64) ([]UserCoupon, error) {
	var ucs []UserCoupon
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Find(&ucs).Error
	return ucs, err
}

func (d *CouponGORMDAO) CommitUsage(ctx context.Context, userCouponID, uid, orderID, discount int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		uc, err := d.findUserCouponForUpdate(tx, userCouponID, uid)
		if err != nil {
			return err
		}
		result := tx.Model(&UserCoupon{}).
			Where("id = ? AND status = ? AND usage_left > 0", userCouponID, UserCouponStatusActive).
			Updates(map[string]any{
				"usage_left": gorm.Expr("usage_left - 1"),
				"utime":      now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: userCouponID=%d", ErrUsageExhausted, userCouponID)
		}
		// 剩余次数归零后置为已用完
		err = tx.Model(&UserCoupon{}).
			Where("id = ? AND usage_left = 0", userCouponID).
			Updates(map[string]any{
				"status": UserCouponStatusUsed,
				"utime":  now,
			}).Error
		if err != nil {
			return err
		}
		result = tx.Model(&Coupon{}).
			Where("id = ? AND (max_usage = 0 OR used_count < max_usage)", uc.CouponId).
			Updates(map[string]any{
				"used_count": gorm.Expr("used_count + 1"),
				"utime":      now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: couponID=%d", ErrUsageExhausted, uc.CouponId)
		}
		return tx.Create(&CouponUsageLog{
			UserCouponId: userCouponID,
			Uid:          uid,
			OrderId:      orderID,
			Discount:     discount,
			Action:       UsageActionUsed,
			Ctime:        now,
		}).Error
	})
}

func (d *CouponGORMDAO) RestoreUsage(ctx context.Context, userCouponID, uid, orderID int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		uc, err := d.findUserCouponForUpdate(tx, userCouponID, uid)
		if err != nil {
			return err
		}
		var c Coupon
		if err = tx.Where("id = ?", uc.CouponId).First(&c).Error; err != nil {
			return err
		}
		// 恢复后的剩余次数不得超过每用户上限
		result := tx.Model(&UserCoupon{}).
			Where("id = ? AND usage_left < ?", userCouponID, c.MaxUsagePerUser).
			Updates(map[string]any{
				"usage_left": gorm.Expr("usage_left + 1"),
				"status":     UserCouponStatusActive,
				"utime":      now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		err = tx.Model(&Coupon{}).
			Where("id = ? AND used_count > 0", uc.CouponId).
			Updates(map[string]any{
				"used_count": gorm.Expr("used_count - 1"),
				"utime":      now,
			}).Error
		if err != nil {
			return err
		}
		// 删除对应的使用记录,等价于从使用历史中移除该订单
		return tx.Where("user_coupon_id = ? AND order_id = ? AND action = ?",
			userCouponID, orderID, UsageActionUsed).
			Delete(&CouponUsageLog{}).Error
	})
}

func (d *CouponGORMDAO) findUserCouponForUpdate(tx *gorm.DB, userCouponID, uid int64) (UserCoupon, error) {
	var uc UserCoupon
	err := tx.Where("id = ? AND uid = ?", userCouponID, uid).First(&uc).Error
	if err != nil {
		return UserCoupon{}, fmt.Errorf("%w: id=%d", ErrUserCouponNotFound, userCouponID)
	}
	return uc, nil
}

func (d *CouponGORMDAO) FindUsageLogsByUID(ctx context.Context, uid int64) ([]CouponUsageLog, error) {
	var logs []CouponUsageLog
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Find(&logs).Error
	return logs, err
}

func (d *CouponGORMDAO) CountUsageLogs(ctx context.Context, userCouponID int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&CouponUsageLog{}).
		Where("user_coupon_id = ? AND action = ?", userCouponID, UsageActionUsed).
		Count(&count).Error
	return count, err
}

func isDuplicateKeyError(err error) bool {
	me := new(mysql.MySQLError)
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

const (
	UserCouponStatusActive    uint8 = 1
	UserCouponStatusUsed      uint8 = 2
	UserCouponStatusCancelled uint8 = 3

	UsageActionUsed     uint8 = 1
	UsageActionRestored uint8 = 2
)

type Coupon struct {
	Id              int64  `gorm:"primaryKey,autoIncrement;comment:优惠券自增ID"`
	Code            string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_coupon_code;comment:优惠券码,统一大写"`
	Name            string `gorm:"type:varchar(255);not null;comment:优惠券名称"`
	Type            uint8  `gorm:"type:tinyint unsigned;not null;comment:折扣类型 1=百分比 2=固定金额"`
	Value           int64  `gorm:"not null;comment:折扣数值,百分比券为百分数,固定券为金额(分)"`
	MinOrderValue   int64  `gorm:"not null;default:0;comment:使用门槛,单位为分"`
	MaxDiscount     int64  `gorm:"not null;default:0;comment:单次折扣上限,单位为分,0表示不限"`
	StartAt         int64  `gorm:"not null;default:0;comment:生效时间"`
	EndAt           int64  `gorm:"not null;default:0;comment:失效时间,0表示长期有效"`
	MaxUsage        int64  `gorm:"not null;default:0;comment:全局可用次数,0表示不限"`
	MaxUsagePerUser int64  `gorm:"not null;default:1;comment:每用户可用次数"`
	UsedCount       int64  `gorm:"not null;default:0;comment:全局已用次数"`
	Status          uint8  `gorm:"type:tinyint unsigned;not null;default:2;comment:状态 1=停用 2=启用"`
	Ctime           int64
	Utime           int64 `gorm:"index"`
}

type UserCoupon struct {
	Id        int64 `gorm:"primaryKey,autoIncrement;comment:用户优惠券自增ID"`
	Uid       int64 `gorm:"not null;uniqueIndex:uniq_user_coupon;comment:用户ID"`
	CouponId  int64 `gorm:"not null;uniqueIndex:uniq_user_coupon;index:idx_user_coupon_coupon_id;comment:优惠券ID"`
	UsageLeft int64 `gorm:"not null;comment:剩余可用次数,永不为负"`
	Status    uint8 `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=可用 2=已用完 3=已取消"`
	ExpireAt  int64 `gorm:"not null;default:0;comment:过期时间,0表示跟随优惠券"`
	Ctime     int64
	Utime     int64 `gorm:"index"`
}

type CouponUsageLog struct {
	Id           int64 `gorm:"primaryKey,autoIncrement;comment:使用记录自增ID"`
	UserCouponId int64 `gorm:"not null;index:idx_usage_log_user_coupon_id;comment:用户优惠券ID"`
	Uid          int64 `gorm:"not null;index:idx_usage_log_uid;comment:用户ID"`
	OrderId      int64 `gorm:"not null;index:idx_usage_log_order_id;comment:订单ID"`
	Discount     int64 `gorm:"not null;comment:折扣金额,单位为分"`
	Action       uint8 `gorm:"type:tinyint unsigned;not null;comment:动作 1=使用 2=恢复"`
	Ctime        int64
}
