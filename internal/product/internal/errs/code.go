package errs

var (
	SystemError       = ErrorCode{Code: 502001, Msg: "系统错误"}
	SKUNotFound       = ErrorCode{Code: 502002, Msg: "商品SKU不存在"}
	InsufficientStock = ErrorCode{Code: 502003, Msg: "商品库存不足"}
	ProductNotFound   = ErrorCode{Code: 502004, Msg: "商品不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
