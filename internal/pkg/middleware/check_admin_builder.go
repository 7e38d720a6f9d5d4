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

package middleware

import (
	"net/http"

	"github.com/gotomicro/ego/core/elog"

	"github.com/ecodeclub/eshop/internal/user"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type CheckAdminMiddlewareBuilder struct {
	svc    user.Service
	logger *elog.Component
	sp     session.Provider
}

func NewCheckAdminMiddlewareBuilder(svc user.Service) *CheckAdminMiddlewareBuilder {
	return &CheckAdminMiddlewareBuilder{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (c *CheckAdminMiddlewareBuilder) Build() gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}

		claims := sess.Claims()
		// jwt 中已经带了管理员标记
		if claims.Get("role").StringOrDefault("") == user.RoleAdmin {
			return
		}

		// 1. jwt 中没有 role
		// 2. 有可能登录之后才被提升为管理员，所以要再去实时查询一下
		u, err := c.svc.Profile(ctx, claims.Uid)
		if err != nil {
			elog.Error("查询用户失败", elog.Int64("uid", claims.Uid), elog.FieldErr(err))
			gctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		if u.Role != user.RoleAdmin || u.Disabled {
			elog.Debug("非法访问 admin 接口", elog.Int64("uid", claims.Uid),
				elog.String("role", u.Role))
			gctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		// 在原有 jwt 数据中补上管理员标记
		jwtData := claims.Data
		jwtData["role"] = user.RoleAdmin
		claims.Data = jwtData
		err = c.sp.UpdateClaims(gctx, claims)
		if err != nil {
			elog.Error("重新生成 token 失败", elog.Int64("uid", claims.Uid), elog.FieldErr(err))
			gctx.AbortWithStatus(http.StatusForbidden)
			return
		}
	}
}
