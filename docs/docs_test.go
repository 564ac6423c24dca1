package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDoc(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Swagger string                                `json:"swagger"`
		Paths   map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "2.0", parsed.Swagger)

	routes := map[string]string{
		"/":                     "get",
		"/upload-and-process":   "post",
		"/process-static-video": "get",
	}
	for path, method := range routes {
		ops, ok := parsed.Paths[path]
		require.True(t, ok, "missing path %s", path)
		assert.Contains(t, ops, method, "missing %s %s", method, path)
	}
	assert.Len(t, parsed.Paths, len(routes))
}
