package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clipforge/clipforge/internal/ingest/models"
)

func TestTranscodeClient_Submit(t *testing.T) {
	var gotAuth string
	var gotFile []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/video/upload", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		buf := make([]byte, 32)
		n, _ := file.Read(buf)
		gotFile = buf[:n]

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"public_id":"cld-123","bytes":4096,"duration":17.2}`))
	}))
	defer srv.Close()

	c := NewTranscodeClient(TranscodeConfig{BaseURL: srv.URL, APIKey: "secret"})

	desc, err := c.Submit(context.Background(), []byte("video"), "clip.mp4")
	require.NoError(t, err)
	require.Equal(t, &models.MediaDescriptor{ExternalID: "cld-123", Bytes: 4096, DurationSeconds: 17.2}, desc)
	require.Equal(t, "Bearer secret", gotAuth)
	require.Equal(t, "video", string(gotFile))
}

func TestTranscodeClient_OmittedDurationDefaultsToZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"public_id":"cld-123","bytes":4096}`))
	}))
	defer srv.Close()

	c := NewTranscodeClient(TranscodeConfig{BaseURL: srv.URL})

	desc, err := c.Submit(context.Background(), []byte("video"), "clip.mp4")
	require.NoError(t, err)
	require.Zero(t, desc.DurationSeconds)
}

func TestTranscodeClient_ServerErrorsSurface(t *testing.T) {
	cases := []struct {
		name string
		resp func(w http.ResponseWriter)
	}{
		{name: "non-2xx", resp: func(w http.ResponseWriter) {
			http.Error(w, "format rejected", http.StatusUnprocessableEntity)
		}},
		{name: "bad json", resp: func(w http.ResponseWriter) {
			_, _ = w.Write([]byte("not json"))
		}},
		{name: "missing public id", resp: func(w http.ResponseWriter) {
			_, _ = w.Write([]byte(`{"bytes":1}`))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tc.resp(w)
			}))
			defer srv.Close()

			c := NewTranscodeClient(TranscodeConfig{BaseURL: srv.URL})
			desc, err := c.Submit(context.Background(), []byte("video"), "clip.mp4")
			require.Error(t, err)
			require.Nil(t, desc)
		})
	}
}

func TestTranscriptionClient_Transcribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/transcribe", r.URL.Path)
		_, _ = w.Write([]byte(`{"transcript":"hello there","subtitles":"WEBVTT\n\n00:00.000 --> 00:01.000\nhello there"}`))
	}))
	defer srv.Close()

	c := NewTranscriptionClient(TranscriptionConfig{BaseURL: srv.URL})

	tr, err := c.Transcribe(context.Background(), []byte("audio"), "clip.mp4")
	require.NoError(t, err)
	require.Equal(t, "hello there", tr.Transcript)
	require.Contains(t, tr.SubtitleText, "WEBVTT")
}

func TestTranscriptionClient_EmptySubtitlesIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"transcript":"hello","subtitles":""}`))
	}))
	defer srv.Close()

	c := NewTranscriptionClient(TranscriptionConfig{BaseURL: srv.URL})
	_, err := c.Transcribe(context.Background(), []byte("audio"), "clip.mp4")
	require.Error(t, err)
}

func TestSynthesisClient_Synthesize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/generate", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte("your next viral tweet"))
	}))
	defer srv.Close()

	c := NewSynthesisClient(SynthesisConfig{BaseURL: srv.URL})

	text, err := c.Synthesize(context.Background(), models.Twitter, "a transcript")
	require.NoError(t, err)
	require.Equal(t, "your next viral tweet", text)
}

func TestSynthesisClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewSynthesisClient(SynthesisConfig{BaseURL: srv.URL})
	_, err := c.Synthesize(context.Background(), models.LinkedIn, "a transcript")
	require.Error(t, err)
}

func TestIdentityClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/users/ext-42", r.URL.Path)
		_, _ = w.Write([]byte(`{"email":"someone@example.com"}`))
	}))
	defer srv.Close()

	c := NewIdentityClient(IdentityConfig{BaseURL: srv.URL})

	id, err := c.Lookup(context.Background(), "ext-42")
	require.NoError(t, err)
	require.Equal(t, "ext-42", id.ExternalID)
	require.Equal(t, "someone@example.com", id.Email)
}

func TestIdentityClient_UnknownSubject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewIdentityClient(IdentityConfig{BaseURL: srv.URL})
	_, err := c.Lookup(context.Background(), "ghost")
	require.ErrorIs(t, err, models.ErrNotFound)
}
