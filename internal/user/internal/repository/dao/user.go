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
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = gorm.ErrRecordNotFound
	// ErrUserDuplicate 邮箱或手机号与已有用户冲突
	ErrUserDuplicate = errors.New("用户已存在")
)

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	FindByID(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	// UpdateNonZeroFields 以主键定位,只更新非零值字段
	UpdateNonZeroFields(ctx context.Context, u User) error
	UpdatePassword(ctx context.Context, id int64, password string) error
	UpdateDisabled(ctx context.Context, id int64, disabled bool) error
	List(ctx context.Context, offset, limit int, keyword, role string) ([]User, error)
	Count(ctx context.Context, keyword, role string) (int64, error)
	// ActiveIDs 返回所有未被禁用的用户ID
	ActiveIDs(ctx context.Context) ([]int64, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{db: db}
}

func (d *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime, u.Utime = now, now
	err := d.db.WithContext(ctx).Create(&u).Error
	if isDuplicateKeyError(err) {
		return 0, ErrUserDuplicate
	}
	return u.Id, err
}

func (d *GORMUserDAO) FindByID(ctx context.Context, id int64) (User, error) {
	var u User
	err := d.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (d *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := d.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (d *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Updates(&u).Error
	if isDuplicateKeyError(err) {
		return ErrUserDuplicate
	}
	return err
}

func (d *GORMUserDAO) UpdatePassword(ctx context.Context, id int64, password string) error {
	return d.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password": password,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (d *GORMUserDAO) UpdateDisabled(ctx context.Context, id int64, disabled bool) error {
	res := d.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"disabled": disabled,
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (d *GORMUserDAO) List(ctx context.Context, offset, limit int, keyword, role string) ([]User, error) {
	var us []User
	err := d.buildQuery(ctx, keyword, role).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&us).Error
	return us, err
}

func (d *GORMUserDAO) Count(ctx context.Context, keyword, role string) (int64, error) {
	var count int64
	err := d.buildQuery(ctx, keyword, role).Count(&count).Error
	return count, err
}

func (d *GORMUserDAO) buildQuery(ctx context.Context, keyword, role string) *gorm.DB {
	query := d.db.WithContext(ctx).Model(&User{})
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("fullname LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}
	if role != "" {
		query = query.Where("role = ?", role)
	}
	return query
}

func (d *GORMUserDAO) ActiveIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := d.db.WithContext(ctx).Model(&User{}).
		Where("disabled = ?", false).
		Pluck("id", &ids).Error
	return ids, err
}

func isDuplicateKeyError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

type User struct {
	Id       int64  `gorm:"primaryKey,autoIncrement;comment:用户自增ID"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_user_email;comment:邮箱"`
	Phone    string `gorm:"type:varchar(32);not null;uniqueIndex:uniq_user_phone;comment:手机号"`
	Password string `gorm:"type:varchar(128);not null;comment:密码散列"`
	Fullname string `gorm:"type:varchar(255);not null;comment:姓名"`
	Gender   string `gorm:"type:varchar(16);comment:性别"`
	Avatar   string `gorm:"type:varchar(512);comment:头像"`
	Role     string `gorm:"type:varchar(16);not null;default:customer;index:idx_user_role;comment:角色 customer|admin"`
	Disabled bool   `gorm:"not null;default:false;comment:是否禁用"`
	Ctime    int64
	Utime    int64
}
