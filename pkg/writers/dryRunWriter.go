// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"k8s.io/klog/v2"
)

// DryRunWriter is the functional interface for working
// with dry run writers
type DryRunWriter interface {
	// GetWriter creates DryRunWriters writing to the
	// same backend but for different roots (e.g. for
	// pages and static files)
	GetWriter(root string) Writer
	// Flush wraps up dryrun writing and flushes
	// results to the underlying writer (e.g. os.Stdout)
	Flush() bool
}

type dryRunWriter struct {
	Writer io.Writer
	mux    sync.Mutex
	files  []*file
	t1     time.Time
}

type file struct {
	path string
	size int
}

type writer struct {
	root string
	d    *dryRunWriter
}

// NewDryRunWritersFactory creates factory for DryRunWriters
// writing to the same backend but for different roots (e.g. for
// pages and static files)
func NewDryRunWritersFactory(w io.Writer) DryRunWriter {
	return &dryRunWriter{
		Writer: w,
		t1:     time.Now(),
	}
}

func (d *dryRunWriter) GetWriter(root string) Writer {
	return &writer{root: root, d: d}
}

func (w *writer) Write(name, p string, content []byte) error {
	f := &file{
		path: strings.TrimPrefix(path.Join(w.root, p, name), "/"),
		size: len(content),
	}
	w.d.mux.Lock()
	defer w.d.mux.Unlock()
	w.d.files = append(w.d.files, f)
	return nil
}

// Flush formats and writes the dry-run result to the
// underlying writer
func (d *dryRunWriter) Flush() bool {
	var b bytes.Buffer
	d.mux.Lock()
	defer d.mux.Unlock()

	sort.Slice(d.files, func(i, j int) bool { return d.files[i].path < d.files[j].path })
	format(d.files, &b)

	total := 0
	for _, f := range d.files {
		total += f.size
	}
	summary := color.New(color.FgGreen, color.Bold).Sprintf("%d files, %d bytes", len(d.files), total)
	b.WriteString(fmt.Sprintf("\n%s\nBuild finished in %f seconds\n", summary, time.Since(d.t1).Seconds()))

	if _, err := d.Writer.Write(b.Bytes()); err != nil {
		klog.Errorf("writing dry run result failed: %v", err)
		return false
	}
	return true
}

func format(files []*file, b *bytes.Buffer) {
	seen := map[string]bool{}
	for _, f := range files {
		dd := strings.Split(f.path, "/")
		for i, s := range dd {
			p := strings.Join(dd[:i+1], "/")
			if seen[p] {
				continue
			}
			seen[p] = true
			b.Write(bytes.Repeat([]byte("  "), i))
			b.WriteString(s)
			b.WriteString("\n")
		}
	}
}
