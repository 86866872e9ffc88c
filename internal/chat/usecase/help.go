package usecase

import (
	"context"
)

var suggestions = []string{
	"Hiển thị danh sách nhân viên",
	"Thêm nhân viên \"Nguyễn Văn An\" phòng ban 2 email an@congty.vn",
	"Tạo phòng ban \"Marketing\"",
	"Tạo vị trí \"Backend Engineer\" cho phòng ban \"Engineering\" cần 3 người",
	"Check in nhân viên 7",
	"Báo cáo chấm công tháng này",
	"Tạo đơn nghỉ phép cho nhân viên 3 từ 12/03/2026 đến 14/03/2026 lý do: việc gia đình",
	"Phê duyệt nghỉ phép id 42",
	"Danh sách nghỉ phép chờ duyệt",
	"Hợp đồng sắp hết hạn trong 30 ngày",
	"Tính lương phiếu lương 5",
	"Tổng hợp bảo hiểm tháng trước",
	"Tìm \"Nguyễn\"",
	"Xuất báo cáo nhân viên dạng csv",
	"Tổng quan nhân sự",
}

const helpText = `🤖 TRỢ LÝ NHÂN SỰ
Nhập yêu cầu bằng tiếng Việt hoặc tiếng Anh, mỗi tin nhắn một yêu cầu.
• Nhân viên: Danh sách nhân viên / Thêm nhân viên ... / Xóa nhân viên 5
• Tuyển dụng: Tạo vị trí "Backend Engineer" cần 3 người / Tuyển ứng viên 4
• Chấm công: Check in nhân viên 7 / Báo cáo chấm công tháng 3
• Nghỉ phép: Tạo đơn nghỉ phép ... / Phê duyệt nghỉ phép id 42
• Hợp đồng, lương, bảo hiểm: Hợp đồng sắp hết hạn / Tổng hợp lương tháng này
• Dự án, công việc, giờ làm, chi phí, ca làm việc
• Tìm kiếm và báo cáo: Tìm "An" / Xuất báo cáo chấm công dạng csv
Mã bản ghi viết dạng id 42, #42 hoặc nhân viên 7.
Tên và tiêu đề đặt trong ngoặc kép, ví dụ Tạo phòng ban "QA".
Gán trường trực tiếp: Cập nhật nhân viên 5 job_title: "Team Lead"`

func (uc *implUseCase) Suggestions(ctx context.Context) []string {
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}

func (uc *implUseCase) Help(ctx context.Context) string {
	return helpText
}
