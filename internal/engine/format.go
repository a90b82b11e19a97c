package engine

import (
	"math"
	"strconv"
	"strings"
)

// Format выводит число для дисплея: десятичная запись без хвостового ".0",
// разделители тысяч в целой части. Точность не трогается — только косметика.
// Inf и NaN выводятся словами, чтобы форматирование не падало (§ об ошибках:
// переполнение спец-ошибкой не считается).
func Format(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	if math.IsInf(v, -1) {
		return "-Infinity"
	}

	// 'f' с точностью -1 — минимальная десятичная запись без экспоненты;
	// целые double выводятся сразу без дробной части.
	s := strconv.FormatFloat(v, 'f', -1, 64)

	// Минус снимается до группировки и возвращается после.
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	out := groupThousands(intPart)
	if hasFrac {
		// Внутри дробной части разделителей нет.
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

// groupThousands вставляет "," каждые 3 цифры, считая справа.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(n + n/3)
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
