package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func TestNewRecord(t *testing.T) {
	r, err := NewRecord("John Smith")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", r.Name())
	assert.Empty(t, r.Phones())
	_, ok := r.Birthday()
	assert.False(t, ok)

	r, err = NewRecord("Jane Doe", "1990-05-21")
	require.NoError(t, err)
	bd, ok := r.Birthday()
	assert.True(t, ok)
	assert.Equal(t, "1990-05-21", bd)

	_, err = NewRecord("")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = NewRecord("Jane Doe", "2024-02-30")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestRecordAddPhone(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890", "1234567890")
	assert.Equal(t, []string{"1234567890", "1234567890"}, r.Phones(), "duplicates are kept")

	err := r.AddPhone("12345")
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Len(t, r.Phones(), 2, "failed add must not append")
}

func TestRecordRemovePhone(t *testing.T) {
	r := newTestRecord(t, "John", "1111111111", "2222222222", "1111111111")

	r.RemovePhone("1111111111")
	assert.Equal(t, []string{"2222222222", "1111111111"}, r.Phones(), "only the first match is removed")

	r.RemovePhone("9999999999")
	assert.Equal(t, []string{"2222222222", "1111111111"}, r.Phones(), "missing phone is a no-op")
}

func TestRecordEditPhone(t *testing.T) {
	tests := []struct {
		name       string
		old, new   string
		wantErr    error
		wantPhones []string
	}{
		{
			name:       "replace in place",
			old:        "2222222222",
			new:        "0987654321",
			wantPhones: []string{"1111111111", "0987654321", "3333333333"},
		},
		{
			name:       "missing old phone",
			old:        "9999999999",
			new:        "0987654321",
			wantErr:    ErrNotFound,
			wantPhones: []string{"1111111111", "2222222222", "3333333333"},
		},
		{
			name:       "invalid new phone",
			old:        "2222222222",
			new:        "098765432x",
			wantErr:    ErrInvalidValue,
			wantPhones: []string{"1111111111", "2222222222", "3333333333"},
		},
		{
			name:       "invalid new phone wins over missing old",
			old:        "9999999999",
			new:        "short",
			wantErr:    ErrInvalidValue,
			wantPhones: []string{"1111111111", "2222222222", "3333333333"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRecord(t, "John", "1111111111", "2222222222", "3333333333")
			err := r.EditPhone(tt.old, tt.new)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantPhones, r.Phones())
		})
	}
}

func TestRecordEditThenFind(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890")
	require.NoError(t, r.EditPhone("1234567890", "0987654321"))

	_, ok := r.FindPhone("1234567890")
	assert.False(t, ok)

	p, ok := r.FindPhone("0987654321")
	require.True(t, ok)
	assert.Equal(t, "0987654321", p.Value())
}

func TestRecordSetBirthday(t *testing.T) {
	r := newTestRecord(t, "John")
	require.NoError(t, r.SetBirthday("1990-05-21"))

	err := r.SetBirthday("1990-05-32")
	assert.ErrorIs(t, err, ErrInvalidValue)
	bd, ok := r.Birthday()
	assert.True(t, ok)
	assert.Equal(t, "1990-05-21", bd, "birthday should not change on error")

	require.NoError(t, r.SetBirthday(""))
	_, ok = r.Birthday()
	assert.False(t, ok)
}

func TestRecordDaysToBirthday(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	tests := []struct {
		name     string
		birthday string
		today    time.Time
		want     int
	}{
		{name: "today", birthday: "1990-06-15", today: day(2025, time.June, 15), want: 0},
		{name: "tomorrow", birthday: "1990-06-16", today: day(2025, time.June, 15), want: 1},
		{name: "yesterday wraps to next year", birthday: "1990-06-14", today: day(2025, time.June, 15), want: 364},
		{name: "yesterday wraps into leap year", birthday: "1990-03-01", today: day(2023, time.March, 2), want: 365},
		{name: "new year", birthday: "1990-01-01", today: day(2025, time.December, 31), want: 1},
		{name: "leap day in common year is feb 28", birthday: "2000-02-29", today: day(2025, time.February, 1), want: 27},
		{name: "leap day on feb 28 of common year", birthday: "2000-02-29", today: day(2025, time.February, 28), want: 0},
		{name: "leap day reached in leap year", birthday: "2000-02-29", today: day(2023, time.March, 1), want: 365},
		{name: "leap day passed in leap year", birthday: "2000-02-29", today: day(2024, time.March, 1), want: 364},
		{
			name:     "time of day and zone ignored",
			birthday: "1990-06-15",
			today:    time.Date(2025, time.June, 15, 23, 30, 0, 0, time.FixedZone("UTC+5", 5*3600)),
			want:     0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRecord("John", tt.birthday)
			require.NoError(t, err)
			got, ok := r.DaysToBirthday(tt.today)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("no birthday", func(t *testing.T) {
		r := newTestRecord(t, "John")
		_, ok := r.DaysToBirthday(time.Now())
		assert.False(t, ok)
	})
}

func TestRecordString(t *testing.T) {
	r := newTestRecord(t, "John Smith", "1234567890", "5555555555")
	assert.Equal(t, "Contact name: John Smith, phones: 1234567890; 5555555555", r.String())

	empty := newTestRecord(t, "Jane Doe")
	assert.Equal(t, "Contact name: Jane Doe, phones: ", empty.String())
}

func TestRecordPhonesIsCopy(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890")
	phones := r.Phones()
	phones[0] = "0000000000"
	assert.Equal(t, []string{"1234567890"}, r.Phones())
}
