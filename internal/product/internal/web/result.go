package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/eshop/internal/product/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	skuNotFoundResult = ginx.Result{
		Code: errs.SKUNotFound.Code,
		Msg:  errs.SKUNotFound.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
)
