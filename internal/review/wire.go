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

//go:build wireinject

package review

import (
	"sync"

	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/review/internal/repository"
	"github.com/ecodeclub/eshop/internal/review/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/review/internal/service"
	"github.com/ecodeclub/eshop/internal/review/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, pm *product.Module, om *order.Module) *Module {
	wire.Build(
		initReviewDAO,
		repository.NewReviewRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*product.Module), "Svc"),
		wire.FieldsOf(new(*order.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func initReviewDAO(db *egorm.Component) dao.ReviewDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewReviewGORMDAO(db)
}
