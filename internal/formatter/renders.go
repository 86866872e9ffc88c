package formatter

import (
	"fmt"
	"strings"
)

func employeeList(data any) string {
	list := rows(data)
	var b strings.Builder
	fmt.Fprintf(&b, "👥 DANH SÁCH NHÂN VIÊN (%d)\n", len(list))
	if len(list) == 0 {
		b.WriteString("Không có nhân viên nào.\n")
	}
	for i, e := range list {
		if i == listCap {
			break
		}
		fmt.Fprintf(&b, "%d. %s (#%s)", i+1, firstText(e, "name"), text(e["id"]))
		if job := firstText(e, "job_title"); job != "" {
			b.WriteString(" - " + job)
		}
		if dep := firstText(e, "department_name"); dep != "" {
			b.WriteString(" - " + dep)
		}
		if email := firstText(e, "work_email"); email != "" {
			b.WriteString(" - " + email)
		}
		b.WriteByte('\n')
	}
	more(&b, len(list), min(len(list), listCap), "nhân viên")
	return strings.TrimRight(b.String(), "\n")
}

var dashboardLines = []struct {
	key, label string
}{
	{"total_employees", "Nhân viên"},
	{"total_departments", "Phòng ban"},
	{"recruiting_jobs", "Vị trí đang tuyển"},
	{"pending_leaves", "Đơn nghỉ chờ duyệt"},
	{"active_contracts", "Hợp đồng hiệu lực"},
	{"open_applicants", "Ứng viên đang xử lý"},
	{"attendances", "Lượt chấm công"},
	{"checked_in_now", "Đang làm việc"},
}

func dashboard(data any) string {
	stats := object(data)
	var b strings.Builder
	b.WriteString("📊 TỔNG QUAN NHÂN SỰ")
	if p := period(stats); p != "" {
		b.WriteString(" (" + p + ")")
	}
	b.WriteByte('\n')
	for _, line := range dashboardLines {
		if _, ok := stats[line.key]; ok {
			fmt.Fprintf(&b, "• %s: %s\n", line.label, count(stats[line.key]))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

var searchGroups = []struct {
	key, label string
	name       []string
}{
	{"employees", "Nhân viên", []string{"name"}},
	{"departments", "Phòng ban", []string{"name"}},
	{"jobs", "Vị trí", []string{"name"}},
	{"applicants", "Ứng viên", []string{"partner_name", "name"}},
	{"projects", "Dự án", []string{"name"}},
}

func searchResults(data any) string {
	res := object(data)
	var b strings.Builder
	fmt.Fprintf(&b, "🔍 KẾT QUẢ TÌM KIẾM %q (%s)\n", text(res["search_term"]), count(res["total"]))
	found := false
	for _, g := range searchGroups {
		hits := rows(res[g.key])
		if len(hits) == 0 {
			continue
		}
		found = true
		fmt.Fprintf(&b, "%s (%d):\n", g.label, len(hits))
		for i, h := range hits {
			if i == searchCap {
				break
			}
			fmt.Fprintf(&b, "  • %s (#%s)\n", firstText(h, g.name...), text(h["id"]))
		}
		if len(hits) > searchCap {
			fmt.Fprintf(&b, "  … và %d kết quả khác\n", len(hits)-searchCap)
		}
	}
	if !found {
		b.WriteString("Không tìm thấy kết quả nào.\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func attendanceReport(data any) string {
	rep := object(data)
	list := rows(rep["employees"])
	var b strings.Builder
	b.WriteString("⏰ BÁO CÁO CHẤM CÔNG")
	if p := period(rep); p != "" {
		b.WriteString(" (" + p + ")")
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Tổng: %s giờ, %s lượt, %d nhân viên\n", hours(rep["total_hours"]), count(rep["total_records"]), len(list))
	for i, e := range list {
		if i == listCap {
			break
		}
		name := firstText(e, "employee_name")
		if name == "" {
			name = "#" + text(e["employee_id"])
		}
		fmt.Fprintf(&b, "%d. %s: %s giờ, %s ngày\n", i+1, name, hours(e["worked_hours"]), count(e["days"]))
	}
	more(&b, len(list), min(len(list), listCap), "nhân viên")
	return strings.TrimRight(b.String(), "\n")
}

var leaveStates = map[string]string{
	"draft":     "nháp",
	"confirm":   "chờ duyệt",
	"validate1": "chờ duyệt lần 2",
	"validate":  "đã duyệt",
	"refuse":    "từ chối",
	"cancel":    "đã hủy",
}

func leaveList(data any) string {
	list := rows(data)
	var b strings.Builder
	fmt.Fprintf(&b, "🏖️ DANH SÁCH NGHỈ PHÉP (%d)\n", len(list))
	if len(list) == 0 {
		b.WriteString("Không có đơn nghỉ phép nào.\n")
	}
	for i, l := range list {
		if i == listCap {
			break
		}
		who := firstText(l, "employee_name")
		if who == "" {
			who = "NV #" + text(l["employee_id"])
		}
		fmt.Fprintf(&b, "%d. #%s %s: %s", i+1, text(l["id"]), who, period(l))
		if days := l["number_of_days"]; days != nil {
			fmt.Fprintf(&b, " (%s ngày)", text(days))
		}
		if st := text(l["state"]); st != "" {
			if label, ok := leaveStates[st]; ok {
				st = label
			}
			b.WriteString(" - " + st)
		}
		b.WriteByte('\n')
	}
	more(&b, len(list), min(len(list), listCap), "đơn")
	return strings.TrimRight(b.String(), "\n")
}

func createdJob(data any) string {
	job := object(data)
	var b strings.Builder
	b.WriteString("✅ TẠO VỊ TRÍ TUYỂN DỤNG\n")
	fmt.Fprintf(&b, "• ID: %s\n", text(job["id"]))
	fmt.Fprintf(&b, "• Vị trí: %s\n", text(job["name"]))
	if dep := department(job); dep != "" {
		fmt.Fprintf(&b, "• Phòng ban: %s\n", dep)
	}
	if n, ok := job["no_of_recruitment"]; ok {
		fmt.Fprintf(&b, "• Số lượng cần tuyển: %s\n", count(n))
	}
	return strings.TrimRight(b.String(), "\n")
}

func createdEmployee(data any) string {
	emp := object(data)
	var b strings.Builder
	b.WriteString("✅ TẠO NHÂN VIÊN\n")
	fmt.Fprintf(&b, "• ID: %s\n", text(emp["id"]))
	fmt.Fprintf(&b, "• Họ tên: %s\n", text(emp["name"]))
	if email := firstText(emp, "work_email"); email != "" {
		fmt.Fprintf(&b, "• Email: %s\n", email)
	}
	if job := firstText(emp, "job_title"); job != "" {
		fmt.Fprintf(&b, "• Chức danh: %s\n", job)
	}
	if dep := department(emp); dep != "" {
		fmt.Fprintf(&b, "• Phòng ban: %s\n", dep)
	}
	return strings.TrimRight(b.String(), "\n")
}

func createdDepartment(data any) string {
	dep := object(data)
	var b strings.Builder
	b.WriteString("✅ TẠO PHÒNG BAN\n")
	fmt.Fprintf(&b, "• ID: %s\n", text(dep["id"]))
	fmt.Fprintf(&b, "• Tên: %s\n", text(dep["name"]))
	if m := firstText(dep, "manager_id"); m != "" {
		fmt.Fprintf(&b, "• Trưởng phòng: #%s\n", m)
	}
	return strings.TrimRight(b.String(), "\n")
}

func department(m map[string]any) string {
	if name := firstText(m, "department_name"); name != "" {
		return name
	}
	if id := firstText(m, "department_id"); id != "" {
		return "#" + id
	}
	return ""
}
