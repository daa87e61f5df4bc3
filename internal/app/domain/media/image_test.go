package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/travelmind/internal/app/models"
)

func fakeDuckDuckGo(t *testing.T, page, results string) *DuckDuckGoImages {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Eiffel Tower", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(page))
	})
	mux.HandleFunc("/i.js", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "4-123456789", r.URL.Query().Get("vqd"))
		assert.Equal(t, "json", r.URL.Query().Get("o"))
		_, _ = w.Write([]byte(results))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewDuckDuckGoImages(srv.URL + "/")
}

func TestDuckDuckGoImages_FindImage(t *testing.T) {
	pages := map[string]string{
		"token in script": `<html><head><script>DDG.deep.initialize('/d.js?q=Eiffel&vqd="4-123456789"&p=1');</script></head></html>`,
		"token in input":  `<html><body><form><input type="hidden" name="vqd" value="4-123456789"></form></body></html>`,
	}

	for name, page := range pages {
		t.Run(name, func(t *testing.T) {
			d := fakeDuckDuckGo(t, page, `{"results":[{"image":"https://img.example/eiffel.jpg","title":"Eiffel"}]}`)

			url, err := d.FindImage(context.Background(), "Eiffel Tower")

			require.NoError(t, err)
			assert.Equal(t, "https://img.example/eiffel.jpg", url)
		})
	}
}

func TestDuckDuckGoImages_NoResults(t *testing.T) {
	d := fakeDuckDuckGo(t, `<script>vqd='4-123456789'</script>`, `{"results":[]}`)

	_, err := d.FindImage(context.Background(), "Eiffel Tower")

	assert.ErrorIs(t, err, models.ErrImageNotFound)
}

func TestDuckDuckGoImages_NoToken(t *testing.T) {
	d := fakeDuckDuckGo(t, `<html><body>blocked</body></html>`, `{}`)

	_, err := d.FindImage(context.Background(), "Eiffel Tower")

	assert.ErrorIs(t, err, models.ErrImageNotFound)
}
