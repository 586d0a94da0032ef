package publish

import (
	"path/filepath"
	"runtime"
	"strings"
)

// assetName derives the remote asset name from a local artifact path, the
// host target triple and the native executable suffix:
// {stem}-{host}{suffix}, e.g. tool-x86_64-pc-windows-msvc.exe
// A dotfile with no other dot (cargo writes .cargo-lock into target/release)
// keeps its full name as the stem.
func assetName(path, host, suffix string) string {
	base := filepath.Base(path)
	stem := base
	if ext := filepath.Ext(base); len(ext) < len(base) {
		stem = strings.TrimSuffix(base, ext)
	}
	return stem + "-" + host + suffix
}

func exeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
