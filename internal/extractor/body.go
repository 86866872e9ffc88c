package extractor

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"hr-agent/internal/catalog"
)

var (
	deptNounRe  = regexp.MustCompile(`(?i)(?:phòng ban|bộ phận|department|phòng)`)
	deptNameRe  = regexp.MustCompile(`(?i)(?:phòng ban|bộ phận|department|phòng)\s+(\p{L}[\p{L}\p{N}&\- ]*?)\s*(?:$|[,.;!?]|\s(?:cần|need|với|with|có|và|and|từ|from|lương|tháng|năm|hôm|tuần|id|số|email|sđt|phone|quản lý|manager)(?:[^\p{L}]|$))`)
	emailRe     = regexp.MustCompile(`[\w.+-]+@[\w-]+(?:\.[\w-]+)+`)
	phoneRe     = regexp.MustCompile(`(?:\+84|0)\d{9,10}`)
	headcountRe = regexp.MustCompile(`(?i)(?:cần|need|tuyển)\s*(\d+)|(\d+)\s*(?:người|nhân viên|people|persons|positions|headcount)`)
	hoursRe     = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:giờ|tiếng|hours?|hrs?|h)(?:[^\p{L}\d]|$)`)
	dayCountRe  = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:ngày|days?)(?:[^\p{L}]|$)`)
	shiftHourRe = regexp.MustCompile(`(?i)(\d{1,2})(?:h(\d{2})?|:(\d{2}))\s*(?:-|–|đến|tới|to)\s*(\d{1,2})(?:h(\d{2})?|:(\d{2}))`)
	reasonRe    = regexp.MustCompile(`(?i)(?:lý do|vì|reason|because)\s*:?\s*(.+)$`)
	pairRe      = regexp.MustCompile(`(?i)(?:^|[\s,;])([a-z_]+)\s*[:=]\s*(?:["“]([^"”]*)["”]|([^\s,;]+))`)
	moneyRe     = regexp.MustCompile(`(?i)` + numberRe + `\s*(tỷ|tỉ|triệu|tr|nghìn|ngàn|k|đồng|vnd|đ)(?:[^\p{L}]|$)`)

	wageRe      = amountRe(`mức lương|lương cơ bản|lương|wage|salary`)
	allowanceRe = amountRe(`phụ cấp|allowance`)
	deductionRe = amountRe(`khấu trừ|deduction`)
	amountKwRe  = amountRe(`số tiền|amount|tổng|total|hết`)
)

// titleRe captures an unquoted title after one of the nouns, up to a stop word.
func titleRe(nouns string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:` + nouns + `)\s+(\p{L}[\p{L}\p{N}\- ]*?)\s*(?:$|[,.;!?]|\s(?:cho|for|cần|need|tại|ở|thuộc|phòng|department|với|with|email|sđt|phone|lương|từ|from|quản lý|manager|vào|ngày|id|số)(?:[^\p{L}]|$))`)
}

var titleFallback = map[string]*regexp.Regexp{
	"job":        titleRe(`vị trí tuyển dụng|vị trí|job position|job|position`),
	"department": titleRe(`phòng ban|department`),
	"employee":   titleRe(`nhân viên mới|nhân viên|employee`),
	"project":    titleRe(`dự án|project`),
	"skill":      titleRe(`kỹ năng|skill`),
	"shift":      titleRe(`ca làm việc|shift`),
}

// rangeKeys are the body keys a date range fills per entity.
var rangeKeys = map[string][2]string{
	"leave":            {"date_from", "date_to"},
	"leave.allocation": {"date_from", "date_to"},
	"payslip":          {"date_from", "date_to"},
	"payslip.run":      {"date_start", "date_end"},
	"contract":         {"date_start", "date_end"},
	"project":          {"date_start", "date_end"},
	"insurance.policy": {"date_start", "date_end"},
}

// dateKeys are the body keys a single date fills per entity.
var dateKeys = map[string]string{
	"timesheet":          "date",
	"expense":            "date",
	"insurance.payment":  "date",
	"insurance.benefit":  "date",
	"shift.assignment":   "date",
	"task":               "date_deadline",
	"project.assignment": "date_start",
}

func (e *implExtractor) body(ctx context.Context, u *utterance, route catalog.Route, out map[string]any) {
	entity := route.Entity

	// Title.
	if key, ok := nameKeys[entity]; ok {
		if qs := u.otherQuotes(); len(qs) > 0 {
			out[key] = qs[0].text
		} else if re, ok := titleFallback[entity]; ok && route.Verb == catalog.VerbCreate {
			if m := re.FindStringSubmatch(u.nfc); m != nil {
				out[key] = strings.TrimSpace(m[1])
			}
		}
	}

	// References to other records.
	for _, f := range refFields(route) {
		if v, ok := u.ids.ref(f); ok {
			out[f] = v
		}
	}

	// Department by name.
	if _, ok := out["department_id"]; !ok && entity != "department" &&
		(route.AcceptsField("department_id") || route.AcceptsField("department_name")) {
		if name := departmentName(u); name != "" {
			if id, ok := e.lookupDepartment(ctx, name); ok {
				out["department_id"] = id
			} else {
				out["department_name"] = name
			}
		}
	}

	if m := emailRe.FindString(u.nfc); m != "" {
		out["email"] = m
	}
	if m := phoneRe.FindString(u.nfc); m != "" {
		out["phone"] = m
	}

	switch entity {
	case "job":
		if n, ok := headcount(u.nfc); ok {
			out["expected_employees"] = n
		} else if route.Verb == catalog.VerbCreate {
			out["expected_employees"] = 1
		}
	case "leave", "leave.allocation":
		if lt, ok := firstPhrase(u.lower, leaveTypes); ok {
			out["leave_type"] = lt
		}
		if m := dayCountRe.FindStringSubmatch(u.nfc); m != nil {
			if n, ok := parseAmount(m[1], ""); ok {
				out["days"] = n
			}
		}
	case "contract", "payslip":
		if v, ok := amountAfter(u.nfc, wageRe); ok {
			out["wage"] = v
		}
		if v, ok := amountAfter(u.nfc, allowanceRe); ok {
			out["allowance"] = v
		}
		if v, ok := amountAfter(u.nfc, deductionRe); ok {
			out["deduction"] = v
		}
	case "insurance.policy":
		if pt, ok := firstPhrase(u.lower, policyTypes); ok {
			out["policy_type"] = pt
		}
		if v, ok := amountAfter(u.nfc, wageRe); ok {
			out["salary_base"] = v
		}
	case "insurance.payment", "insurance.benefit", "expense":
		if v, ok := money(u.nfc); ok {
			out["amount"] = v
		}
	case "timesheet":
		if m := hoursRe.FindStringSubmatch(u.nfc); m != nil {
			if h, ok := parseAmount(m[1], ""); ok {
				out["hours"] = h
			}
		}
	case "employee.skill":
		if lvl, ok := firstPhrase(u.lower, skillLevels); ok {
			out["level"] = lvl
		}
	case "shift":
		if m := shiftHourRe.FindStringSubmatch(u.nfc); m != nil {
			out["hour_from"] = clockHours(m[1], m[2]+m[3])
			out["hour_to"] = clockHours(m[4], m[5]+m[6])
		}
	}

	if m := reasonRe.FindStringSubmatch(u.nfc); m != nil && route.AcceptsField("reason") {
		out["reason"] = strings.Trim(m[1], " \t\"'“”.")
	}

	e.bodyDates(u, route, out)
}

func (e *implExtractor) bodyDates(u *utterance, route catalog.Route, out map[string]any) {
	f := u.dates
	if route.Verb == catalog.Action("renew") {
		if d := firstNonEmpty(f.to, f.date); d != "" {
			out["date_end"] = d
		}
		return
	}

	if keys, ok := rangeKeys[route.Entity]; ok {
		switch {
		case f.from != "" || f.to != "":
			if f.from != "" {
				out[keys[0]] = f.from
			}
			if f.to != "" {
				out[keys[1]] = f.to
			}
		case f.date != "":
			out[keys[0]] = f.date
			if route.Entity == "leave" || route.Entity == "leave.allocation" {
				out[keys[1]] = f.date
			}
		default:
			if r, ok := e.rangeOf(f, u.now); ok {
				out[keys[0]] = r.FromString()
				out[keys[1]] = r.LastDayString()
			}
		}
		return
	}

	if key, ok := dateKeys[route.Entity]; ok {
		if d := firstNonEmpty(f.date, f.from); d != "" {
			out[key] = d
		} else if f.hasRelative {
			out[key] = f.relative.FromString()
		}
	}
}

// refFields lists the whitelisted *_id keys that are not path holes, in a stable order.
func refFields(route catalog.Route) []string {
	seen := map[string]bool{}
	for _, h := range route.PathParams {
		seen[h] = true
	}
	var out []string
	add := func(f string) {
		if strings.HasSuffix(f, "_id") && !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	for _, f := range route.Fields {
		add(f)
	}
	aliasKeys := make([]string, 0, len(route.Aliases))
	for k := range route.Aliases {
		aliasKeys = append(aliasKeys, k)
	}
	sort.Strings(aliasKeys)
	for _, k := range aliasKeys {
		add(k)
	}
	return out
}

func departmentName(u *utterance) string {
	if u.hasDeptQuote {
		return u.deptQuote.text
	}
	if m := deptNameRe.FindStringSubmatch(u.nfc); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func headcount(text string) (int, bool) {
	m := headcountRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(firstNonEmpty(m[1], m[2]))
	return n, err == nil && n > 0
}

// money finds an amount after an amount keyword, else any number with a currency unit.
func money(text string) (float64, bool) {
	if v, ok := amountAfter(text, amountKwRe); ok {
		return v, true
	}
	m := moneyRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	unit := strings.ToLower(m[2])
	if unit == "đồng" || unit == "vnd" || unit == "đ" {
		unit = ""
	}
	return parseAmount(m[1], unit)
}

func clockHours(h, m string) float64 {
	hh, _ := strconv.Atoi(h)
	mm, _ := strconv.Atoi(m)
	return float64(hh) + float64(mm)/60
}

// pair is one explicit "key: value" in the text.
type pair struct {
	key, raw   string
	quoted     bool
	start, end int
}

func findPairs(text string) []pair {
	var out []pair
	for _, m := range pairRe.FindAllStringSubmatchIndex(text, -1) {
		p := pair{key: strings.ToLower(text[m[2]:m[3]]), start: m[0], end: m[1]}
		if m[4] >= 0 {
			p.raw, p.quoted = text[m[4]:m[5]], true
		} else {
			p.raw = text[m[6]:m[7]]
		}
		out = append(out, p)
	}
	return out
}

// applyPairs copies explicit pairs. Route extras go to extras, everything else
// to the body.
func applyPairs(u *utterance, route catalog.Route, body, extras map[string]any) {
	for _, p := range u.pairs {
		var v any = p.raw
		if !p.quoted {
			v = numberValue(p.raw)
		}
		if route.AcceptsExtra(p.key) {
			extras[p.key] = v
			continue
		}
		body[p.key] = v
	}
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
