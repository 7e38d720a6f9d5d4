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
	"strings"

	"github.com/ecodeclub/eshop/internal/user/internal/domain"
	"github.com/ecodeclub/eshop/internal/user/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

// ErrAdminUntouchable 不允许禁用管理员账号
var ErrAdminUntouchable = errors.New("不能禁用管理员账号")

type AdminService interface {
	List(ctx context.Context, offset, limit int, keyword, role string) ([]domain.User, int64, error)
	Detail(ctx context.Context, id int64) (domain.User, error)
	// Save ID为0时新建用户,否则更新
	Save(ctx context.Context, user domain.User) (int64, error)
	ToggleStatus(ctx context.Context, id int64, disabled bool) error
}

type adminService struct {
	repo repository.UserRepository
}

func NewAdminService(repo repository.UserRepository) AdminService {
	return &adminService{repo: repo}
}

func (s *adminService) List(ctx context.Context, offset, limit int, keyword, role string) ([]domain.User, int64, error) {
	var eg errgroup.Group
	var users []domain.User
	var total int64
	eg.Go(func() error {
		var err error
		users, err = s.repo.List(ctx, offset, limit, keyword, role)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, keyword, role)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, total, nil
}

func (s *adminService) Detail(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = ""
	return u, nil
}

func (s *adminService) Save(ctx context.Context, user domain.User) (int64, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Role == "" {
		user.Role = domain.RoleCustomer
	}
	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return 0, err
		}
		user.Password = string(hash)
	}
	if user.ID > 0 {
		return user.ID, s.repo.UpdateNonZeroFields(ctx, user)
	}
	return s.repo.Create(ctx, user)
}

func (s *adminService) ToggleStatus(ctx context.Context, id int64, disabled bool) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u.IsAdmin() && disabled {
		return ErrAdminUntouchable
	}
	return s.repo.UpdateDisabled(ctx, id, disabled)
}
