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
)

var ErrNotificationNotFound = gorm.ErrRecordNotFound

// fanOutBatchSize 全量推送时分批写入的批大小
const fanOutBatchSize = 500

type NotificationDAO interface {
	// Create 写入通知并为每个接收者生成一条用户通知
	Create(ctx context.Context, n Notification, uids []int64) (int64, error)
	Update(ctx context.Context, n Notification) error
	// Delete 删除通知及其全部用户通知
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (Notification, error)
	List(ctx context.Context, offset, limit int, typ string) ([]Notification, error)
	Count(ctx context.Context, typ string) (int64, error)

	// ListByUID 只返回处于生效窗口内的通知
	ListByUID(ctx context.Context, uid int64, offset, limit int, now int64) ([]UserNotificationDetail, error)
	CountByUID(ctx context.Context, uid int64, now int64) (int64, error)
	MarkRead(ctx context.Context, uid, id int64) error
	MarkAllRead(ctx context.Context, uid int64) error
	UnreadCount(ctx context.Context, uid int64, now int64) (int64, error)
}

type NotificationGORMDAO struct {
	db *egorm.Component
}

func NewNotificationGORMDAO(db *egorm.Component) NotificationDAO {
	return &NotificationGORMDAO{db: db}
}

func (d *NotificationGORMDAO) Create(ctx context.Context, n Notification, uids []int64) (int64, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		n.Ctime, n.Utime = now, now
		if err := tx.Create(&n).Error; err != nil {
			return err
		}
		uns := make([]UserNotification, 0, len(uids))
		for _, uid := range uids {
			uns = append(uns, UserNotification{
				Uid:            uid,
				NotificationId: n.Id,
				Ctime:          now,
				Utime:          now,
			})
		}
		return tx.CreateInBatches(&uns, fanOutBatchSize).Error
	})
	return n.Id, err
}

func (d *NotificationGORMDAO) Update(ctx context.Context, n Notification) error {
	res := d.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ?", n.Id).
		Updates(map[string]any{
			"title":    n.Title,
			"message":  n.Message,
			"start_at": n.StartAt,
			"end_at":   n.EndAt,
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (d *NotificationGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notification_id = ?", id).
			Delete(&UserNotification{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&Notification{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotificationNotFound
		}
		return nil
	})
}

func (d *NotificationGORMDAO) FindByID(ctx context.Context, id int64) (Notification, error) {
	var n Notification
	err := d.db.WithContext(ctx).First(&n, "id = ?", id).Error
	return n, err
}

func (d *NotificationGORMDAO) List(ctx context.Context, offset, limit int, typ string) ([]Notification, error) {
	var res []Notification
	query := d.db.WithContext(ctx)
	if typ != "" {
		query = query.Where("type = ?", typ)
	}
	err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *NotificationGORMDAO) Count(ctx context.Context, typ string) (int64, error) {
	var count int64
	query := d.db.WithContext(ctx).Model(&Notification{})
	if typ != "" {
		query = query.Where("type = ?", typ)
	}
	err := query.Count(&count).Error
	return count, err
}

func (d *NotificationGORMDAO) ListByUID(ctx context.Context, uid int64, offset, limit int, now int64) ([]UserNotificationDetail, error) {
	var res []UserNotificationDetail
	err := d.userVisible(ctx, uid, now).
		Select("un.id AS id, un.uid AS uid, un.notification_id AS notification_id, " +
			"un.is_read AS is_read, un.read_at AS read_at, un.ctime AS ctime, " +
			"n.title AS title, n.type AS type, n.message AS message, " +
			"n.start_at AS start_at, n.end_at AS end_at").
		Order("un.id DESC").
		Offset(offset).Limit(limit).
		Scan(&res).Error
	return res, err
}

func (d *NotificationGORMDAO) CountByUID(ctx context.Context, uid int64, now int64) (int64, error) {
	var count int64
	err := d.userVisible(ctx, uid, now).Count(&count).Error
	return count, err
}

func (d *NotificationGORMDAO) MarkRead(ctx context.Context, uid, id int64) error {
	res := d.db.WithContext(ctx).Model(&UserNotification{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]any{
			"is_read": true,
			"read_at": time.Now().UnixMilli(),
			"utime":   time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (d *NotificationGORMDAO) MarkAllRead(ctx context.Context, uid int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Model(&UserNotification{}).
		Where("uid = ? AND is_read = ?", uid, false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": now,
			"utime":   now,
		}).Error
}

func (d *NotificationGORMDAO) UnreadCount(ctx context.Context, uid int64, now int64) (int64, error) {
	var count int64
	err := d.userVisible(ctx, uid, now).
		Where("un.is_read = ?", false).
		Count(&count).Error
	return count, err
}

func (d *NotificationGORMDAO) userVisible(ctx context.Context, uid, now int64) *gorm.DB {
	return d.db.WithContext(ctx).Table("user_notifications AS un").
		Joins("JOIN notifications AS n ON n.id = un.notification_id").
		Where("un.uid = ? AND n.start_at <= ? AND (n.end_at = 0 OR n.end_at > ?)", uid, now, now)
}

type Notification struct {
	Id        int64  `gorm:"primaryKey,autoIncrement;comment:通知自增ID"`
	Title     string `gorm:"type:varchar(255);not null;comment:标题"`
	Type      string `gorm:"type:varchar(32);not null;index:idx_notification_type;comment:类型 system|order|promotion"`
	Message   string `gorm:"type:text;comment:内容"`
	StartAt   int64  `gorm:"not null;comment:生效时间"`
	EndAt     int64  `gorm:"not null;default:0;comment:过期时间,0为永久"`
	Global    bool   `gorm:"not null;default:false;comment:是否全员通知"`
	CreatedBy int64  `gorm:"comment:创建者ID"`
	Ctime     int64
	Utime     int64
}

type UserNotification struct {
	Id             int64 `gorm:"primaryKey,autoIncrement;comment:用户通知自增ID"`
	Uid            int64 `gorm:"not null;uniqueIndex:uniq_user_notification;index:idx_user_notification_uid;comment:用户ID"`
	NotificationId int64 `gorm:"not null;uniqueIndex:uniq_user_notification;comment:通知ID"`
	IsRead         bool  `gorm:"not null;default:false;comment:是否已读"`
	ReadAt         int64 `gorm:"not null;default:0;comment:已读时间"`
	Ctime          int64
	Utime          int64
}

// UserNotificationDetail 连表查询的结果载体
type UserNotificationDetail struct {
	Id             int64
	Uid            int64
	NotificationId int64
	IsRead         bool
	ReadAt         int64
	Ctime          int64
	Title          string
	Type           string
	Message        string
	StartAt        int64
	EndAt          int64
}
