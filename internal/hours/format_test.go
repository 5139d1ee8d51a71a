package hours

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "12:00 AM"},
		{540, "9:00 AM"},
		{570, "9:30 AM"},
		{720, "12:00 PM"},
		{1320, "10:00 PM"},
		{1439, "11:59 PM"},
		{1560, "2:00 AM"}, // normalized overnight close
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
		})
	}
}

func TestFormatTimeRange(t *testing.T) {
	assert.Equal(t, "9:00 AM - 5:00 PM", FormatTimeRange(540, 1020))
	assert.Equal(t, "6:00 PM - 2:00 AM", FormatTimeRange(1080, 120))
}

func TestFormatDayRange(t *testing.T) {
	tests := []struct {
		name string
		days []Day
		want string
	}{
		{"empty", nil, ""},
		{"single", []Day{Wednesday}, "Wed"},
		{"weekdays", []Day{Monday, Tuesday, Wednesday, Thursday, Friday}, "Mon–Fri"},
		{"alternating", []Day{Monday, Wednesday, Friday}, "Mon, Wed, Fri"},
		{"full week", AllDays[:], FullWeek},
		{"full week unordered with duplicates", []Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Monday}, FullWeek},
		{"weekend", []Day{Saturday, Sunday}, "Sat–Sun"},
		{"wraps past sunday", []Day{Saturday, Sunday, Monday}, "Sat–Mon"},
		{"span and single", []Day{Monday, Tuesday, Wednesday, Friday}, "Mon–Wed, Fri"},
		{"unordered input", []Day{Friday, Monday, Thursday, Wednesday, Tuesday}, "Mon–Fri"},
		{"all but wednesday", []Day{Monday, Tuesday, Thursday, Friday, Saturday, Sunday}, "Thu–Tue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDayRange(tt.days))
		})
	}
}

func TestFormatDayRangeFrom(t *testing.T) {
	assert.Equal(t, FullWeek, FormatDayRangeFrom(AllDays[:], Sunday))
	assert.Equal(t, FullWeek, FormatDayRangeFrom(AllDays[:], Wednesday))
	assert.Equal(t, "Sun–Mon", FormatDayRangeFrom([]Day{Sunday, Monday}, Sunday))
	assert.Equal(t, "Mon, Wed, Fri", FormatDayRangeFrom([]Day{Monday, Wednesday, Friday}, Sunday))
}
