package datetime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDate(t *testing.T) {
	d := NewDate(2025, time.June, 15)

	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, time.UTC, d.Location())
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid", input: "2025-06-15", want: NewDate(2025, time.June, 15)},
		{name: "invalid format", input: "15/06/2025", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.want.Time))
		})
	}
}

func TestDate_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(NewDate(2025, time.June, 15))

		assert.NoError(t, err)
		assert.Equal(t, `"2025-06-15"`, string(data))
	})

	t.Run("marshal zero as null", func(t *testing.T) {
		data, err := json.Marshal(Date{})

		assert.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})

	t.Run("unmarshal date-only", func(t *testing.T) {
		var d Date
		assert.NoError(t, json.Unmarshal([]byte(`"2025-06-15"`), &d))
		assert.True(t, d.Equal(NewDate(2025, time.June, 15).Time))
	})

	t.Run("unmarshal RFC3339 keeps date portion", func(t *testing.T) {
		var d Date
		assert.NoError(t, json.Unmarshal([]byte(`"2025-06-15T18:30:00Z"`), &d))
		assert.True(t, d.Equal(NewDate(2025, time.June, 15).Time))
	})

	t.Run("unmarshal null leaves zero", func(t *testing.T) {
		var d Date
		assert.NoError(t, json.Unmarshal([]byte("null"), &d))
		assert.True(t, d.IsZero())
	})

	t.Run("unmarshal garbage fails", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"tomorrow"`), &d))
	})
}

func TestDate_Scan(t *testing.T) {
	t.Run("time.Time drops the clock", func(t *testing.T) {
		var d Date
		assert.NoError(t, d.Scan(time.Date(2025, time.June, 15, 18, 30, 0, 0, time.UTC)))
		assert.True(t, d.Equal(NewDate(2025, time.June, 15).Time))
	})

	t.Run("string", func(t *testing.T) {
		var d Date
		assert.NoError(t, d.Scan("2025-06-15"))
		assert.True(t, d.Equal(NewDate(2025, time.June, 15).Time))
	})

	t.Run("nil clears", func(t *testing.T) {
		var d Date
		assert.NoError(t, d.Scan(nil))
		assert.True(t, d.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var d Date
		assert.Error(t, d.Scan(42))
	})
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(2025, time.June, 15).Value()
	assert.NoError(t, err)
	assert.NotNil(t, v)

	v, err = Date{}.Value()
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestDate_String(t *testing.T) {
	assert.Equal(t, "2025-06-15", NewDate(2025, time.June, 15).String())
	assert.Equal(t, "", Date{}.String())
}

func TestToday(t *testing.T) {
	d := Today()
	now := time.Now().UTC()

	assert.Equal(t, now.Year(), d.Year())
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, 0, d.Minute())
}

func TestPeriod_Valid(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		want   bool
	}{
		{name: "june 2025", period: Period{Month: 6, Year: 2025}, want: true},
		{name: "january", period: Period{Month: 1, Year: 2025}, want: true},
		{name: "december", period: Period{Month: 12, Year: 2025}, want: true},
		{name: "month zero", period: Period{Month: 0, Year: 2025}, want: false},
		{name: "month thirteen", period: Period{Month: 13, Year: 2025}, want: false},
		{name: "year zero", period: Period{Month: 6, Year: 0}, want: false},
		{name: "negative month", period: Period{Month: -1, Year: 2025}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.Valid())
		})
	}
}

func TestPeriod_String(t *testing.T) {
	assert.Equal(t, "2025-06", Period{Month: 6, Year: 2025}.String())
	assert.Equal(t, "2025-12", Period{Month: 12, Year: 2025}.String())
}

func TestPeriodOf(t *testing.T) {
	p := PeriodOf(time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, Period{Month: 2, Year: 2024}, p)
}

func TestCurrentPeriod(t *testing.T) {
	now := time.Now().UTC()

	assert.Equal(t, Period{Month: int(now.Month()), Year: now.Year()}, CurrentPeriod())
}

func TestStartOfMonth(t *testing.T) {
	start := StartOfMonth(time.Date(2025, time.June, 15, 18, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestEndOfMonth(t *testing.T) {
	end := EndOfMonth(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))

	// leap year
	assert.Equal(t, 29, end.Day())
	assert.Equal(t, time.February, end.Month())
}
