package publish

import (
	"testing"

	"gotest.tools/assert"
)

func TestAssetName(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		host   string
		suffix string
		want   string
	}{
		{
			name: "linux binary",
			path: "tool",
			host: "x86_64-unknown-linux-gnu",
			want: "tool-x86_64-unknown-linux-gnu",
		},
		{
			name:   "windows binary",
			path:   "tool.exe",
			host:   "x86_64-pc-windows-msvc",
			suffix: ".exe",
			want:   "tool-x86_64-pc-windows-msvc.exe",
		},
		{
			name: "full artifact path",
			path: "/home/build/project/target/release/tool",
			host: "aarch64-apple-darwin",
			want: "tool-aarch64-apple-darwin",
		},
		{
			name: "stem strips extension only",
			path: "my-tool.exe",
			host: "x86_64-pc-windows-msvc",
			want: "my-tool-x86_64-pc-windows-msvc",
		},
		{
			name: "dotfile keeps full name as stem",
			path: "/p/target/release/.cargo-lock",
			host: "x86_64-unknown-linux-gnu",
			want: ".cargo-lock-x86_64-unknown-linux-gnu",
		},
		{
			name: "dotfile with extension",
			path: ".config.json",
			host: "x86_64-unknown-linux-gnu",
			want: ".config-x86_64-unknown-linux-gnu",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, assetName(tc.path, tc.host, tc.suffix))
		})
	}
}
