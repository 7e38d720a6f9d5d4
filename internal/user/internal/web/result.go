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

package web

import (
	"github.com/ecodeclub/eshop/internal/user/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	userNotFoundResult = ginx.Result{
		Code: errs.UserNotFound.Code,
		Msg:  errs.UserNotFound.Msg,
	}
	duplicateUserResult = ginx.Result{
		Code: errs.DuplicateUser.Code,
		Msg:  errs.DuplicateUser.Msg,
	}
	wrongPasswordResult = ginx.Result{
		Code: errs.WrongPassword.Code,
		Msg:  errs.WrongPassword.Msg,
	}
	adminUntouchableResult = ginx.Result{
		Code: errs.AdminUntouchable.Code,
		Msg:  errs.AdminUntouchable.Msg,
	}
)
