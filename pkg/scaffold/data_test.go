package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataClone(t *testing.T) {
	original := Data{
		"namespace": "acme",
		"nested":    map[string]interface{}{"key": "value"},
		"list":      []interface{}{"a", "b"},
	}

	clone := original.Clone()
	clone["namespace"] = "other"
	clone["nested"].(map[string]interface{})["key"] = "changed"
	clone["list"].([]interface{})[0] = "z"

	assert.Equal(t, "acme", original["namespace"])
	assert.Equal(t, "value", original["nested"].(map[string]interface{})["key"])
	assert.Equal(t, "a", original["list"].([]interface{})[0])
}

func TestDataWith(t *testing.T) {
	base := Data{"namespace": "acme"}
	extended := base.With(map[string]interface{}{"collection_name": "widgets"})

	assert.Equal(t, Data{"namespace": "acme"}, base)
	assert.Equal(t, "widgets", extended["collection_name"])
	assert.Equal(t, "acme", extended["namespace"])
}

func TestDataString(t *testing.T) {
	d := Data{"name": "x", "count": 3, "nothing": nil}

	assert.Equal(t, "x", d.String("name"))
	assert.Equal(t, "3", d.String("count"))
	assert.Equal(t, "", d.String("nothing"))
	assert.Equal(t, "", d.String("missing"))
}
