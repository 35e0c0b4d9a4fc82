package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationString(t *testing.T) {
	for _, tc := range []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Minute, "30m"},
		{2*time.Hour + 3*time.Minute + 4*time.Second, "2h3m4s"},
		{time.Hour, "1h"},
		{15 * time.Second, "15s"},
	} {
		assert.Equal(t, tc.want, Duration(tc.d).String())
	}

	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1h30m")))
	assert.Equal(t, 90*time.Minute, time.Duration(d))
	assert.Error(t, d.UnmarshalText([]byte("soon")))
	assert.Equal(t, 90*time.Minute, time.Duration(d), "kept on errors")

	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1h30m", string(b))
}

func TestClamp(t *testing.T) {
	one, six, ten := 1, 6, 10
	v := &six
	assert.NoError(t, Clamp("size", &v, &one, &ten))

	big := 40
	v = &big
	err := Clamp("size", &v, &one, &ten)
	var re *RangeError[int]
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 40, *re.Value)
	assert.Equal(t, 10, *v, "value is clamped to max")
	assert.EqualError(t, err, "size (40) is out of the [1, 10] range")

	small := 0
	v = &small
	require.Error(t, Clamp("size", &v, &one, nil))
	assert.Equal(t, 1, *v, "value is clamped to min")

	err = Clamp("size", &v, &ten, &one)
	assert.EqualError(t, err, "size: min (10) is greater than max (1)")

	var missing *int
	assert.NoError(t, Clamp("size", &missing, &one, &ten))

	Default(&missing, 7)
	require.NotNil(t, missing)
	assert.Equal(t, 7, *missing)
	Default(&missing, 9)
	assert.Equal(t, 7, *missing)
}
