package filewatch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/polyaxon/plx/pkg/utils/filewatch"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestUntilModified(t *testing.T) {
	for name, modify := range map[string]func(t *testing.T, config string){
		"when the file is written": func(t *testing.T, config string) {
			writeFile(t, config, "port: 8001\n")
		},
		"when the file is removed": func(t *testing.T, config string) {
			if err := os.Remove(config); err != nil {
				t.Fatal(err)
			}
		},
		"when the file is renamed": func(t *testing.T, config string) {
			if err := os.Rename(config, config+".bak"); err != nil {
				t.Fatal(err)
			}
		},
	} {
		t.Run(name+", it cancels context", func(t *testing.T) {
			config := filepath.Join(t.TempDir(), "config.yaml")
			writeFile(t, config, "port: 8000\n")

			ctx, cancel, err := filewatch.UntilModified(context.Background(), config)
			if err != nil {
				t.Fatal(err)
			}
			defer cancel()
			if err := ctx.Err(); err != nil {
				t.Fatalf("context is done too early: %v", err)
			}

			modify(t, config)

			select {
			case <-ctx.Done():
			case <-time.After(5 * time.Second):
				t.Fatal("context is not canceled")
			}
			if cause := context.Cause(ctx); !errors.Is(cause, filewatch.ErrModified) {
				t.Errorf("unexpected cause: %v", cause)
			}
		})
	}

	t.Run("when a file is created in the watched directory, it cancels context", func(t *testing.T) {
		dir := t.TempDir()
		ctx, cancel, err := filewatch.UntilModified(context.Background(), dir)
		if err != nil {
			t.Fatal(err)
		}
		defer cancel()

		writeFile(t, filepath.Join(dir, "config.yaml"), "port: 8000\n")

		select {
		case <-ctx.Done():
		case <-time.After(5 * time.Second):
			t.Fatal("context is not canceled")
		}
	})

	t.Run("when only the mode is changed, it keeps context", func(t *testing.T) {
		config := filepath.Join(t.TempDir(), "config.yaml")
		writeFile(t, config, "port: 8000\n")

		ctx, cancel, err := filewatch.UntilModified(context.Background(), config)
		if err != nil {
			t.Fatal(err)
		}
		defer cancel()

		if err := os.Chmod(config, 0600); err != nil {
			t.Fatal(err)
		}

		select {
		case <-ctx.Done():
			t.Fatalf("context is canceled: %v", context.Cause(ctx))
		case <-time.After(300 * time.Millisecond):
		}
	})

	t.Run("when cancel is called, the cause is context.Canceled", func(t *testing.T) {
		config := filepath.Join(t.TempDir(), "config.yaml")
		writeFile(t, config, "port: 8000\n")

		ctx, cancel, err := filewatch.UntilModified(context.Background(), config)
		if err != nil {
			t.Fatal(err)
		}
		cancel()
		<-ctx.Done()
		if cause := context.Cause(ctx); !errors.Is(cause, context.Canceled) {
			t.Errorf("unexpected cause: %v", cause)
		}
	})

	t.Run("when the file does not exist, it returns an error", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.yaml")
		ctx, cancel, err := filewatch.UntilModified(context.Background(), missing)
		if err == nil {
			cancel()
			t.Fatal("expected error, but got nil")
		}
		if ctx != nil || cancel != nil {
			t.Error("context or cancel is returned with error")
		}
	})
}
