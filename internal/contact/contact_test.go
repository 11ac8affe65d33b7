package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMessage() Message {
	return Message{Name: "Ada", Email: "ada@example.com", Body: "We're getting married in June."}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want []error
	}{
		{"valid", validMessage(), nil},
		{"blank name", Message{Name: "  ", Email: "a@b.co", Body: "hi"}, []error{ErrNameRequired}},
		{"bad email", Message{Name: "A", Email: "not-an-email", Body: "hi"}, []error{ErrEmailInvalid}},
		{"display name email", Message{Name: "A", Email: "A <a@b.co>", Body: "hi"}, []error{ErrEmailInvalid}},
		{"everything missing", Message{}, []error{ErrNameRequired, ErrEmailInvalid, ErrBodyRequired}},
		{"too long", Message{Name: "A", Email: "a@b.co", Body: strings.Repeat("x", MaxBodyLength+1)}, []error{ErrBodyTooLong}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			for _, w := range tt.want {
				assert.ErrorIs(t, err, w)
			}
		})
	}
}

func TestSimulated(t *testing.T) {
	s := Simulated{Delay: time.Millisecond}
	assert.NoError(t, s.Submit(context.Background(), validMessage()))
	assert.ErrorIs(t, s.Submit(context.Background(), Message{}), ErrNameRequired)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	slow := Simulated{Delay: time.Hour}
	assert.ErrorIs(t, slow.Submit(ctx, validMessage()), context.Canceled)
}

func TestHTTPSubmitter(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	msg := validMessage()
	msg.Name = "  Ada  "
	require.NoError(t, NewHTTPSubmitter(srv.URL).Submit(context.Background(), msg))
	assert.Equal(t, "Ada", got.Name)
}

func TestHTTPSubmitter_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "mailbox full", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewHTTPSubmitter(srv.URL).Submit(context.Background(), validMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "mailbox full")
}
