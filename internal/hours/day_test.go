package hours

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		input string
		want  Day
		ok    bool
	}{
		{"Monday", Monday, true},
		{"mon", Monday, true},
		{"TUES", Tuesday, true},
		{"tue", Tuesday, true},
		{"Weds", Wednesday, true},
		{"thur", Thursday, true},
		{"Thurs.", Thursday, true},
		{"fri:", Friday, true},
		{"sat", Saturday, true},
		{"sun", Sunday, true},
		{"Sunday", Sunday, true},
		{"holiday", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDay(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDayNames(t *testing.T) {
	assert.Equal(t, "Monday", Monday.String())
	assert.Equal(t, "Mon", Monday.Short())
	assert.Equal(t, "Sun", Sunday.Short())
	assert.Equal(t, "Day(9)", Day(9).String())
}

func TestWeek(t *testing.T) {
	assert.Equal(t, AllDays[:], Week(Monday))
	assert.Equal(t, []Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}, Week(Sunday))
	assert.Equal(t, AllDays[:], Week(Day(42)))
}

func TestDayText(t *testing.T) {
	text, err := Friday.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "Friday", string(text))

	var d Day
	assert.NoError(t, d.UnmarshalText([]byte("sat")))
	assert.Equal(t, Saturday, d)
	assert.Error(t, d.UnmarshalText([]byte("someday")))
}
