package buildinfo

import (
	"bytes"
	"testing"
)

func TestPrintBuildInfo(t *testing.T) {
	tests := []struct {
		name    string
		version string
		date    string
		commit  string
		want    string
	}{
		{
			name: "all empty",
			want: "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n",
		},
		{
			name:    "all set",
			version: "1.2.3",
			date:    "2026-01-01",
			commit:  "abcdef",
			want:    "Build version: 1.2.3\nBuild date: 2026-01-01\nBuild commit: abcdef\n",
		},
		{
			name: "date only",
			date: "2026-01-01",
			want: "Build version: N/A\nBuild date: 2026-01-01\nBuild commit: N/A\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintBuildInfo(&buf, tt.version, tt.date, tt.commit)

			if buf.String() != tt.want {
				t.Fatalf("unexpected output\nwant:\n%q\nhave:\n%q", tt.want, buf.String())
			}
		})
	}
}
