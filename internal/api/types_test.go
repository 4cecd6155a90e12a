package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomID_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected RoomID
		wantErr  bool
	}{
		{"number", `42`, 42, false},
		{"string", `"42"`, 42, false},
		{"large snowflake string", `"1873456789012345678"`, 1873456789012345678, false},
		{"null", `null`, 0, false},
		{"empty string", `""`, 0, false},
		{"not a number", `"abc"`, 0, true},
		{"float", `4.2`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var id RoomID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestRoomID_MarshalsAsNumber(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(RoomSummary{RoomID: 7, Name: "A", TTL: 60, Round: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"roomId":7,"name":"A","ttl":60,"round":1}`, string(raw))
}

func TestParseRoomID(t *testing.T) {
	t.Parallel()

	id, err := ParseRoomID("1001")
	require.NoError(t, err)
	assert.Equal(t, RoomID(1001), id)
	assert.Equal(t, "1001", id.String())

	for _, bad := range []string{"", "abc", "0", "-3", "12a"} {
		_, err := ParseRoomID(bad)
		assert.Error(t, err, bad)
	}
}

func TestRoomInfoVO_Flags(t *testing.T) {
	t.Parallel()

	var info RoomInfoVO
	require.NoError(t, json.Unmarshal([]byte(`{
		"roomId": "9", "name": "骰子局", "ttl": 3600, "round": 2,
		"isOpen": 1, "isDel": 0,
		"createTime": "2025-01-01 10:00:00", "updateTime": "2025-01-01 11:00:00"
	}`), &info))

	assert.True(t, info.Opened())
	assert.False(t, info.Deleted())
	assert.Equal(t, RoomSummary{RoomID: 9, Name: "骰子局", TTL: 3600, Round: 2}, info.Summary())
}

func TestText_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Text
	}{
		{`"6,6,5"`, "6,6,5"},
		{`""`, ""},
		{`7`, "7"},
		{`1735689600000`, "1735689600000"},
		{`3.5`, "3.5"},
		{`null`, ""},
	}
	for _, tt := range tests {
		var got Text
		require.NoError(t, json.Unmarshal([]byte(tt.in), &got), tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	var bad Text
	assert.Error(t, json.Unmarshal([]byte(`true`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &bad))
}

func TestPlayerRecord_Decode(t *testing.T) {
	t.Parallel()

	var rank RankResult
	require.NoError(t, json.Unmarshal([]byte(`{"playerRecords":[
		{"playerId": 3, "cardnum": "A-01", "name": "Alice", "round": 1,
		 "dice": "6,6,5", "diceOutcome": "豹子", "score": 17, "rollTime": "2025-01-01 10:05:00"},
		{"playerId": "4", "name": "Bob", "round": 1, "score": 9}
	]}`), &rank))

	require.Len(t, rank.PlayerRecords, 2)
	assert.Equal(t, PlayerID(3), rank.PlayerRecords[0].PlayerID)
	assert.Equal(t, Text("A-01"), rank.PlayerRecords[0].CardNum)
	assert.Equal(t, Text("豹子"), rank.PlayerRecords[0].DiceOutcome)
	assert.Equal(t, PlayerID(4), rank.PlayerRecords[1].PlayerID)
	assert.Equal(t, "4", rank.PlayerRecords[1].PlayerID.String())
}
