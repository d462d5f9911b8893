package version

import "testing"

func TestFormatFull(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "unknown commit",
			info: Info{Version: "v1.2.0", Commit: "unknown", Date: "unknown"},
			want: "v1.2.0",
		},
		{
			name: "short commit is ignored",
			info: Info{Version: "v1.2.0", Commit: "abc", Date: "2026-01-01"},
			want: "v1.2.0",
		},
		{
			name: "commit without date",
			info: Info{Version: "v1.2.0", Commit: "0123456789abcdef", Date: "unknown"},
			want: "v1.2.0 (0123456)",
		},
		{
			name: "commit and date",
			info: Info{Version: "v1.2.0", Commit: "0123456789abcdef", Date: "2026-01-01T00:00:00Z"},
			want: "v1.2.0 (0123456, built 2026-01-01T00:00:00Z)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatFull(tt.info); got != tt.want {
				t.Errorf("formatFull() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetVersion_PrefersLdflags(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v9.9.9"
	if got := GetVersion(); got != "v9.9.9" {
		t.Errorf("GetVersion() = %q, want %q", got, "v9.9.9")
	}
}
