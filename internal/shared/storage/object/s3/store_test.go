package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "3f2a/report.pdf", want: "3f2a/report.pdf"},
		{name: "simple prefix", prefix: "docs", key: "3f2a/report.pdf", want: "docs/3f2a/report.pdf"},
		{name: "prefix trailing slash", prefix: "docs/", key: "3f2a/report.pdf", want: "docs/3f2a/report.pdf"},
		{name: "prefix and key slashes", prefix: "/docs/", key: "/3f2a/report.pdf", want: "docs/3f2a/report.pdf"},
		{name: "nested prefix", prefix: "docs/prod", key: "3f2a/report.pdf", want: "docs/prod/3f2a/report.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
