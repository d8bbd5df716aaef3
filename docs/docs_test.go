package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		Info  map[string]any            `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "Stroski API", parsed.Info["title"])
	for _, path := range []string{"/stroski", "/stroski/{id}", "/zaposleni", "/zaposleni/{id}", "/porocila", "/status"} {
		assert.Contains(t, parsed.Paths, path)
	}
	assert.Contains(t, parsed.Paths["/stroski"], "post")
}
