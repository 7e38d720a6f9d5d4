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

package product

import (
	"sync"

	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/repository"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/product/internal/service"
	"github.com/ecodeclub/eshop/internal/product/internal/web"
	"github.com/ego-component/egorm"
)

type Handler = web.Handler
type AdminHandler = web.AdminHandler
type Service = service.Service
type AdminService = service.AdminService

type SPU = domain.SPU
type SKU = domain.SKU
type Color = domain.Color
type Status = domain.Status
type StockQuery = domain.StockQuery

const (
	StatusOffShelf = domain.StatusOffShelf
	StatusOnShelf  = domain.StatusOnShelf
)

var (
	ErrSPUNotFound       = service.ErrSPUNotFound
	ErrSKUNotFound       = service.ErrSKUNotFound
	ErrInsufficientStock = service.ErrInsufficientStock
)

type Module struct {
	Svc      Service
	AdminSvc AdminService
	Hdl      *Handler
	AdminHdl *AdminHandler
}

var once = &sync.Once{}

func InitService(db *egorm.Component) Service {
	d := InitTablesOnce(db)
	r := repository.NewProductRepository(d)
	return service.NewService(r)
}

func InitTablesOnce(db *egorm.Component) dao.ProductDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewProductGORMDAO(db)
}
