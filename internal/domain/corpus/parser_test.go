package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedink/internal/domain/apperr"
)

func TestParseBlob(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     []string
		wantCode string
	}{
		{
			name: "three posts",
			raw:  "A\n---\nB\n---\nC",
			want: []string{"A", "B", "C"},
		},
		{
			name: "blank fragments dropped",
			raw:  "A\n---\n\n---\nB\n---\n   \n---\nC\n---\n",
			want: []string{"A", "B", "C"},
		},
		{
			name: "delimiter inside a line splits",
			raw:  "one---two---three",
			want: []string{"one", "two", "three"},
		},
		{
			name: "multiline posts keep inner newlines",
			raw:  "line 1\nline 2\n---\nB\n---\nC",
			want: []string{"line 1\nline 2", "B", "C"},
		},
		{
			name:     "blank input",
			raw:      "  \n\t",
			wantCode: CodeEmptyInput,
		},
		{
			name:     "only delimiters",
			raw:      "---\n---\n---",
			wantCode: CodeNoPosts,
		},
		{
			name:     "one post",
			raw:      "just one post",
			wantCode: CodeTooFew,
		},
		{
			name:     "two posts",
			raw:      "A\n---\nB",
			wantCode: CodeTooFew,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBlob(tt.raw)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperr.ErrValidation)
				assert.Equal(t, tt.wantCode, apperr.Code(err))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBlob_Messages(t *testing.T) {
	_, err := ParseBlob("---")
	assert.EqualError(t, err, "No valid posts found. Make sure to separate posts with ---")

	_, err = ParseBlob("A---B")
	assert.EqualError(t, err, "Please upload at least 3 posts for better style analysis")
}
