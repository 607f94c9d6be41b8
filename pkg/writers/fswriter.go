// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FSWriter is implementation of Writer interface for writing blobs to the file system
type FSWriter struct {
	Root string
}

func (f *FSWriter) Write(name, path string, content []byte) error {
	p := filepath.Join(f.Root, filepath.FromSlash(path))
	if rel, err := filepath.Rel(f.Root, p); err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("path %s is outside of %s", path, f.Root)
	}
	if err := os.MkdirAll(p, os.ModePerm); err != nil {
		return err
	}
	filePath := filepath.Join(p, name)
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", filePath, err)
	}
	return nil
}
