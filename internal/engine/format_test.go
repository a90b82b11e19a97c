package engine

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{
			name:  "целое с разделителями",
			value: 12454.0,
			want:  "12,454",
		},
		{
			name:  "отрицательное целое с разделителями",
			value: -12454.0,
			want:  "-12,454",
		},
		{
			name:  "дробное с разделителями в целой части",
			value: 1234.5,
			want:  "1,234.5",
		},
		{
			name:  "целый double без дробной части",
			value: 5.0,
			want:  "5",
		},
		{
			name:  "ноль",
			value: 0,
			want:  "0",
		},
		{
			name:  "три цифры без разделителя",
			value: 999,
			want:  "999",
		},
		{
			name:  "ровно тысяча",
			value: 1000,
			want:  "1,000",
		},
		{
			name:  "миллион",
			value: 1234567,
			want:  "1,234,567",
		},
		{
			name:  "дробная часть не группируется",
			value: 1000.123456,
			want:  "1,000.123456",
		},
		{
			name:  "маленькое дробное",
			value: 0.125,
			want:  "0.125",
		},
		{
			name:  "отрицательное дробное",
			value: -0.5,
			want:  "-0.5",
		},
		{
			name:  "плюс бесконечность",
			value: math.Inf(1),
			want:  "Infinity",
		},
		{
			name:  "минус бесконечность",
			value: math.Inf(-1),
			want:  "-Infinity",
		},
		{
			name:  "NaN",
			value: math.NaN(),
			want:  "NaN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.value)
			if got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"12", "12"},
		{"123", "123"},
		{"1234", "1,234"},
		{"12345", "12,345"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
	}

	for _, tt := range tests {
		if got := groupThousands(tt.in); got != tt.want {
			t.Errorf("groupThousands(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
