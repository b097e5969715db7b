package tui

import "fmt"

// Texts shown to the user. The CLI reuses the dialog texts.
const (
	TitleTodos  = "Danh sách nhiệm vụ"
	TitleOrders = "Danh sách đơn hàng"

	TitleNewTodo   = "Thêm nhiệm vụ"
	TitleEditTodo  = "Chỉnh sửa nhiệm vụ"
	TitleNewOrder  = "Thêm đơn hàng"
	TitleEditOrder = "Chỉnh sửa đơn hàng"

	ButtonAdd    = "Thêm"
	ButtonEdit   = "Chỉnh sửa"
	ButtonCancel = "Hủy"

	CancelConfirmTitle = "Xác nhận hủy đơn hàng"
	CancelConfirmOK    = "Hủy đơn"
	CancelConfirmBack  = "Quay lại"

	CancelNoticeTitle   = "Không thể hủy đơn hàng"
	CancelNoticeContent = `Chỉ có thể hủy đơn hàng ở trạng thái "Chờ xác nhận".`

	SearchPlaceholder = "Tìm kiếm mã đơn hàng hoặc khách hàng"
	AllOrdersLabel    = "Tất cả đơn hàng"
)

// CancelConfirmContent returns the confirmation question for an order.
func CancelConfirmContent(id string) string {
	return fmt.Sprintf("Bạn có chắc chắn muốn hủy đơn hàng %s? Hành động này không thể hoàn tác.", id)
}

// Status line texts.
const (
	StatusTodoSaved      = "Đã lưu nhiệm vụ"
	StatusOrderSaved     = "Đã lưu đơn hàng"
	StatusTodoDeleted    = "Đã xóa nhiệm vụ"
	StatusOrderCancelled = "Đã hủy đơn hàng"
)
