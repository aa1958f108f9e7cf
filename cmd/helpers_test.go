package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{
			name:  "short string untouched",
			input: "hello",
			max:   10,
			want:  "hello",
		},
		{
			name:  "exact length untouched",
			input: "hello",
			max:   5,
			want:  "hello",
		},
		{
			name:  "long string gets ellipsis",
			input: "hello world",
			max:   8,
			want:  "hello w…",
		},
		{
			name:  "multibyte runes counted as one",
			input: "héllo wörld",
			max:   8,
			want:  "héllo w…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, truncate(tt.input, tt.max))
		})
	}
}

func TestFormatAge(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "just now", t: now.Add(-30 * time.Second), want: "just now"},
		{name: "one minute", t: now.Add(-90 * time.Second), want: "1 minute ago"},
		{name: "minutes", t: now.Add(-45 * time.Minute), want: "45 minutes ago"},
		{name: "one hour", t: now.Add(-90 * time.Minute), want: "1 hour ago"},
		{name: "hours", t: now.Add(-7 * time.Hour), want: "7 hours ago"},
		{name: "one day", t: now.Add(-30 * time.Hour), want: "1 day ago"},
		{name: "days", t: now.Add(-10 * 24 * time.Hour), want: "10 days ago"},
		{name: "months", t: now.Add(-80 * 24 * time.Hour), want: "2 months ago"},
		{name: "years", t: now.Add(-3 * 365 * 24 * time.Hour), want: "3 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, formatAge(tt.t))
		})
	}
}
