package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	cases := []struct {
		in      string
		want    Platform
		wantErr bool
	}{
		{in: "twitter", want: Twitter},
		{in: "LinkedIn", want: LinkedIn},
		{in: "  INSTAGRAM ", want: Instagram},
		{in: "", wantErr: true},
		{in: "facebook", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePlatform(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedPlatform)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestMediumIngested_Payload(t *testing.T) {
	url := "https://cdn.example.com/captions.vtt"
	m := &Medium{
		ID:          uuid.New(),
		AccountID:   uuid.New(),
		ExternalID:  "cld-abc",
		CaptionsURL: &url,
		CreatedAt:   time.Now(),
	}

	e := NewMediumIngested(m)
	require.Equal(t, "MediumIngested", e.EventType())
	require.Equal(t, m.ID, e.AggregateID())
	require.True(t, e.Captioned())

	raw, err := json.Marshal(e)
	require.NoError(t, err)

	var payload struct {
		EventID    uuid.UUID `json:"event_id"`
		MediumID   uuid.UUID `json:"medium_id"`
		AccountID  uuid.UUID `json:"account_id"`
		ExternalID string    `json:"external_id"`
		Captioned  bool      `json:"captioned"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Equal(t, e.EventID(), payload.EventID)
	require.Equal(t, m.ID, payload.MediumID)
	require.Equal(t, m.AccountID, payload.AccountID)
	require.Equal(t, "cld-abc", payload.ExternalID)
	require.True(t, payload.Captioned)
}
