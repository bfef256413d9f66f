package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCollectionName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "valid", input: "acme.widgets"},
		{name: "digits and underscores", input: "acme_2.web_apps"},
		{name: "no dot", input: "acme", wantErr: "must be in the format"},
		{name: "upper case", input: "Acme.widgets", wantErr: "lower case letters"},
		{name: "leading underscore", input: "acme._widgets", wantErr: "cannot begin with an underscore"},
		{name: "dash", input: "acme.web-apps", wantErr: "lower case letters"},
		{name: "short namespace", input: "ab.widgets", wantErr: "longer than 2 characters"},
		{name: "short name", input: "acme.ab", wantErr: "longer than 2 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCollectionName(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
