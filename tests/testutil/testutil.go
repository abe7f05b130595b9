package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
)

//---------------------------------------------------------------------
// 1. Generic helpers
//---------------------------------------------------------------------

// TmpFile creates a temp file with given content and returns its path.
func TmpFile(t *testing.T, content []byte) string {
	t.Helper()
	f, err := os.CreateTemp("", "fixture-*")
	if err != nil {
		t.Fatalf("tmp-file: %v", err)
	}
	if _, err := f.Write(content); err != nil {
		t.Fatalf("tmp-file-write: %v", err)
	}
	f.Close()
	return f.Name()
}

// TmpDir creates a temp directory and returns its path.
func TmpDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "fixture-dir-*")
	if err != nil {
		t.Fatalf("tmp-dir: %v", err)
	}
	return dir
}

//---------------------------------------------------------------------
// 2. CDK fixtures
//---------------------------------------------------------------------

// BundlingSkippedApp returns an app that stages assets without running any
// bundler, so synthesizing Go lambda constructs in tests does not shell out
// to a build.
func BundlingSkippedApp() awscdk.App {
	return awscdk.NewApp(&awscdk.AppProps{
		Context: &map[string]interface{}{
			"aws:cdk:bundling-stacks": []interface{}{},
		},
	})
}

// DummyGoEntry writes a minimal main package and returns its directory, for
// constructs that expect a Go lambda entry path. Pair with BundlingSkippedApp.
func DummyGoEntry(t *testing.T) string {
	t.Helper()
	dir := TmpDir(t)
	if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n\nfunc main() {}\n"), 0o644); err != nil {
		t.Fatalf("write-go-entry: %v", err)
	}
	// GoFunction refuses entries without a go.mod, even when bundling is
	// skipped.
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module dummy\n\ngo 1.21\n"), 0o644); err != nil {
		t.Fatalf("write-go-mod: %v", err)
	}
	return dir
}
