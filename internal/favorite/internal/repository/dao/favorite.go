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

var ErrFavoriteNotFound = gorm.ErrRecordNotFound

type FavoriteDAO interface {
	// Save 重复收藏同一商品时更新备注而不是报错
	Save(ctx context.Context, f Favorite) error
	UpdateNote(ctx context.Context, uid, spuID int64, note string) error
	Delete(ctx context.Context, uid, spuID int64) error
	FindByUIDAndSPUID(ctx context.Context, uid, spuID int64) (Favorite, error)
	FindByUID(ctx context.Context, uid int64) ([]Favorite, error)
}

type FavoriteGORMDAO struct {
	db *egorm.Component
}

func NewFavoriteGORMDAO(db *egorm.Component) FavoriteDAO {
	return &FavoriteGORMDAO{db: db}
}

func (d *FavoriteGORMDAO) Save(ctx context.Context, f Favorite) error {
	now := time.Now().UnixMilli()
	f.Ctime, f.Utime = now, now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}, {Name: "spu_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"note":  f.Note,
			"utime": now,
		}),
	}).Create(&f).Error
}

func (d *FavoriteGORMDAO) UpdateNote(ctx context.Context, uid, spuID int64, note string) error {
	result := d.db.WithContext(ctx).Model(&Favorite{}).
		Where("uid = ? AND spu_id = ?", uid, spuID).
		Updates(map[string]any{
			"note":  note,
			"utime": time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (d *FavoriteGORMDAO) Delete(ctx context.Context, uid, spuID int64) error {
	result := d.db.WithContext(ctx).
		Where("uid = ? AND spu_id = ?", uid, spuID).
		Delete(&Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (d *FavoriteGORMDAO) FindByUIDAndSPUID(ctx context.Context, uid, spuID int64) (Favorite, error) {
	var f Favorite
	err := d.db.WithContext(ctx).
		Where("uid = ? AND spu_id = ?", uid, spuID).
		First(&f).Error
	return f, err
}

func (d *FavoriteGORMDAO) FindByUID(ctx context.Context, uid int64) ([]Favorite, error) {
	var fs []Favorite
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Find(&fs).Error
	return fs, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Favorite{})
}

type Favorite struct {
	Id    int64  `gorm:"primaryKey,autoIncrement;comment:收藏自增ID"`
	Uid   int64  `gorm:"not null;uniqueIndex:uniq_favorite_uid_spu_id;comment:用户ID"`
	SPUId int64  `gorm:"column:spu_id;not null;uniqueIndex:uniq_favorite_uid_spu_id;comment:SPU ID"`
	Note  string `gorm:"type:varchar(512);not null;default:'';comment:收藏备注"`
	Ctime int64
	Utime int64 `gorm:"index"`
}
