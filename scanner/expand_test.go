package scanner

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "tab at column zero",
			in:   "\tx",
			want: strings.Repeat(" ", 8) + "x",
		},
		{
			name: "tab at column three",
			in:   "abc\tx",
			want: "abc" + strings.Repeat(" ", 5) + "x",
		},
		{
			name: "tab at a stop boundary",
			in:   "12345678\tx",
			want: "12345678" + strings.Repeat(" ", 8) + "x",
		},
		{
			name: "consecutive tabs",
			in:   "\t\t",
			want: strings.Repeat(" ", 16),
		},
		{
			name: "no tabs",
			in:   "int main(void)",
			want: "int main(void)",
		},
		{
			name: "empty line",
			in:   "",
			want: "",
		},
		{
			name: "tab after spaces",
			in:   "  \tx",
			want: strings.Repeat(" ", 8) + "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandTabs([]byte(tt.in), DefaultTabStop)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestExpandTabsCustomStop(t *testing.T) {
	got := ExpandTabs([]byte("ab\tx"), 4)
	assert.Equal(t, "ab  x", string(got))

	// A non-positive stop falls back to the default.
	got = ExpandTabs([]byte("\t"), 0)
	assert.Equal(t, strings.Repeat(" ", 8), string(got))
}
