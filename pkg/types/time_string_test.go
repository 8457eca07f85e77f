package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	for _, bad := range []string{"9:30", "25:00", "12:60", "12-30", "", "12:30:00"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		in   TimeString
		want int
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "23:59", want: 1439},
	}

	for _, tt := range tests {
		got, err := tt.in.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("11:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:15"), got)

	got, err = TimeString("09:00").AddMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), got)

	// Слот не может пересекать полночь
	_, err = TimeString("23:50").AddMinutes(20)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	// Ровно полночь тоже за границей суток: "00:00" лексикографически
	// раньше любого времени, и такой конец слота обошёл бы проверку закрытия
	_, err = TimeString("22:00").AddMinutes(120)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	got, err = TimeString("22:00").AddMinutes(119)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), got)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("18:45")))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, time.March, 10, 14, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
