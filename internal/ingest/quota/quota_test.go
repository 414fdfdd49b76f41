package quota

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clipforge/clipforge/internal/ingest/models"
)

func TestAdmit(t *testing.T) {
	l := NewLedger()

	cases := []struct {
		name    string
		uploads int
		limit   int
		wantErr error
	}{
		{name: "fresh account", uploads: 0, limit: 10, wantErr: nil},
		{name: "one below limit", uploads: 9, limit: 10, wantErr: nil},
		{name: "at limit", uploads: 10, limit: 10, wantErr: models.ErrQuotaExceeded},
		{name: "over limit", uploads: 12, limit: 10, wantErr: models.ErrQuotaExceeded},
		{name: "unlimited plan", uploads: 500, limit: 0, wantErr: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.uploads
			a := &models.Account{UploadsThisPeriod: tc.uploads, UploadLimit: tc.limit}

			err := l.Admit(a)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			// Admission never mutates the counter.
			require.Equal(t, before, a.UploadsThisPeriod)
		})
	}
}

func TestAdmit_NilAccount(t *testing.T) {
	require.ErrorIs(t, NewLedger().Admit(nil), models.ErrInvalidArgument)
}
