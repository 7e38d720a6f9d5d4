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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrReviewNotFound = gorm.ErrRecordNotFound

type ReviewDAO interface {
	// Save 同一个用户对同一个SPU只保留一条评价,重复提交视为修改
	Save(ctx context.Context, review Review) (int64, error)
	FindByUIDAndSPUID(ctx context.Context, uid, spuID int64) (Review, error)
	// DeleteByUIDAndID 只删除属于该用户的评价
	DeleteByUIDAndID(ctx context.Context, uid, id int64) error
	DeleteByID(ctx context.Context, id int64) error
	ListBySPUID(ctx context.Context, spuID int64, offset, limit int) ([]Review, error)
	CountBySPUID(ctx context.Context, spuID int64) (int64, error)
	StatsBySPUID(ctx context.Context, spuID int64) (RatingStats, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Review, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Review, error)
	Count(ctx context.Context) (int64, error)
}

type ReviewGORMDAO struct {
	db *egorm.Component
}

func NewReviewGORMDAO(db *egorm.Component) ReviewDAO {
	return &ReviewGORMDAO{db: db}
}

func (d *ReviewGORMDAO) Save(ctx context.Context, review Review) (int64, error) {
	now := time.Now().UnixMilli()
	review.Ctime, review.Utime = now, now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}, {Name: "spu_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"rating":   review.Rating,
			"comment":  review.Comment,
			"images":   review.Images,
			"verified": review.Verified,
			"utime":    now,
		}),
	}).Create(&review).Error
	return review.Id, err
}

func (d *ReviewGORMDAO) FindByUIDAndSPUID(ctx context.Context, uid, spuID int64) (Review, error) {
	var res Review
	err := d.db.WithContext(ctx).
		Where("uid = ? AND spu_id = ?", uid, spuID).
		First(&res).Error
	return res, err
}

func (d *ReviewGORMDAO) DeleteByUIDAndID(ctx context.Context, uid, id int64) error {
	res := d.db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (d *ReviewGORMDAO) DeleteByID(ctx context.Context, id int64) error {
	res := d.db.WithContext(ctx).Where("id = ?", id).Delete(&Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (d *ReviewGORMDAO) ListBySPUID(ctx context.Context, spuID int64, offset, limit int) ([]Review, error) {
	var res []Review
	err := d.db.WithContext(ctx).
		Where("spu_id = ?", spuID).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ReviewGORMDAO) CountBySPUID(ctx context.Context, spuID int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Review{}).
		Where("spu_id = ?", spuID).
		Count(&count).Error
	return count, err
}

func (d *ReviewGORMDAO) StatsBySPUID(ctx context.Context, spuID int64) (RatingStats, error) {
	var stats RatingStats
	err := d.db.WithContext(ctx).Model(&Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS total").
		Where("spu_id = ?", spuID).
		Scan(&stats).Error
	return stats, err
}

func (d *ReviewGORMDAO) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Review, error) {
	var res []Review
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ReviewGORMDAO) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Review{}).
		Where("uid = ?", uid).
		Count(&count).Error
	return count, err
}

func (d *ReviewGORMDAO) List(ctx context.Context, offset, limit int) ([]Review, error) {
	var res []Review
	err := d.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ReviewGORMDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Review{}).Count(&count).Error
	return count, err
}

type Review struct {
	Id       int64                   `gorm:"primaryKey,autoIncrement;comment:评价自增ID"`
	Uid      int64                   `gorm:"not null;uniqueIndex:uniq_review_uid_spu_id;comment:用户ID"`
	SPUId    int64                   `gorm:"column:spu_id;not null;uniqueIndex:uniq_review_uid_spu_id;index:idx_review_spu_id;comment:SPU ID"`
	Rating   uint8                   `gorm:"type:tinyint unsigned;not null;comment:评分1-5"`
	Comment  string                  `gorm:"type:text;comment:评价内容"`
	Images   sqlx.JsonColumn[[]string] `gorm:"type:text;comment:评价图片列表"`
	Verified bool                    `gorm:"not null;default:false;comment:是否已购买"`
	Ctime    int64
	Utime    int64
}

// RatingStats 聚合查询的结果载体
type RatingStats struct {
	Average float64
	Total   int64
}
