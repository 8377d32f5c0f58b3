package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("VINOTEKA_STORE_KEY", "very-secret")

	out, err := execute(t, "config", "--config", "../etc/", "--json")
	require.NoError(t, err)

	assert.Contains(t, out, `"Title"`)
	assert.Contains(t, out, "********")
	assert.NotContains(t, out, "very-secret")
}

func TestSubscribeCommand(t *testing.T) {
	var got map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/newsletter", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(srv.Close)

	out, err := execute(t, "subscribe", "--url", srv.URL+"/", "--email", "x@y.com")
	require.NoError(t, err)

	assert.Contains(t, out, "¡Gracias por suscribirte a nuestro boletín!")
	assert.Equal(t, "x@y.com", got["email"])
}

func TestContactCommandRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Nombre, email y mensaje son requeridos"}`))
	}))
	t.Cleanup(srv.Close)

	_, err := execute(t, "contact", "--url", srv.URL, "--email", "a@x.com")
	require.Error(t, err)
	assert.Equal(t, "Nombre, email y mensaje son requeridos", err.Error())
}
