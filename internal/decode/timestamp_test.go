package decode

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lufa/internal/common"
)

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2024-05-07 00:32:54")
	require.NoError(t, err)

	want := time.Date(2024, time.May, 7, 0, 32, 54, 0, Location)
	assert.True(t, ts.Equal(want), "got %v", ts)
	assert.Equal(t, "America/Montreal", ts.Location().String())
	assert.True(t, ts.UTC().Equal(time.Date(2024, time.May, 7, 4, 32, 54, 0, time.UTC)))
}

func TestParseTimestamp_Sentinel(t *testing.T) {
	ts, err := ParseTimestamp(ZeroTimestamp)
	require.NoError(t, err)
	assert.True(t, ts.IsZero())
}

func TestParseTimestamp_Errors(t *testing.T) {
	for _, in := range []string{"05/07/2024", "2024-05-07", "2024-05-07T00:32:54", "", "0000-00-00"} {
		_, err := ParseTimestamp(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, common.ErrDecode, in)
	}
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	var tx struct {
		At      Timestamp         `json:"at"`
		Updated OptionalTimestamp `json:"updated"`
		Created OptionalTimestamp `json:"created"`
	}
	in := `{"at": "0000-00-00 00:00:00", "updated": null, "created": "2023-12-31 23:59:59"}`
	require.NoError(t, json.Unmarshal([]byte(in), &tx))

	assert.True(t, tx.At.IsZero())
	assert.False(t, tx.Updated.Valid)
	require.True(t, tx.Created.Valid)
	assert.Equal(t, 2023, tx.Created.Timestamp.Year())

	var bad struct {
		At Timestamp `json:"at"`
	}
	err := json.Unmarshal([]byte(`{"at": null}`), &bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDecode)

	err = json.Unmarshal([]byte(`{"at": 1715056374}`), &bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDecode)
}

func TestParseDate_BothLayouts(t *testing.T) {
	numeric, err := ParseDate("2021-01-01")
	require.NoError(t, err)
	named, err := ParseDate("January 01, 2021")
	require.NoError(t, err)
	short, err := ParseDate("January 1, 2021")
	require.NoError(t, err)

	want := Date{Year: 2021, Month: time.January, Day: 1}
	assert.Equal(t, want, numeric)
	assert.Equal(t, want, named)
	assert.Equal(t, want, short)
	assert.Equal(t, "2021-01-01", want.String())
}

func TestParseDate_NoCrossTrying(t *testing.T) {
	for _, in := range []string{"01 January 2021", "Jan 2021-01-01", "2021/01/01", "", "Jan 01, 2021"} {
		_, err := ParseDate(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, common.ErrDecode, in)
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var p struct {
		Created Date         `json:"created"`
		Since   OptionalDate `json:"since"`
		Renewed OptionalDate `json:"renewed"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"created": "March 15, 2020", "since": null, "renewed": "2022-06-30"}`), &p))

	assert.Equal(t, Date{Year: 2020, Month: time.March, Day: 15}, p.Created)
	assert.False(t, p.Since.Valid)
	require.True(t, p.Renewed.Valid)
	assert.Equal(t, Date{Year: 2022, Month: time.June, Day: 30}, p.Renewed.Date)

	midnight := p.Created.In(Location)
	assert.Equal(t, 0, midnight.Hour())
	assert.Equal(t, p.Created, DateOf(midnight))
}
