package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/wep/backend/internal/types"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.Tip
		wantErr bool
	}{
		{name: "plain object", input: `{"tip":"Bebe agua."}`, want: types.Tip{Tip: "Bebe agua."}},
		{name: "json fence", input: "```json\n{\"tip\":\"Camina.\"}\n```", want: types.Tip{Tip: "Camina."}},
		{name: "bare fence with padding", input: "  ```\n{\"tip\":\"Estira.\"}\n```  \n", want: types.Tip{Tip: "Estira."}},
		{name: "prose", input: "Aquí tienes tu consejo: bebe agua.", wantErr: true},
		{name: "empty", input: "   ", wantErr: true},
		{name: "only fences", input: "```json\n```", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got types.Tip
			err := ExtractJSON(tt.input, &got)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnparseableOutput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
