// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package tests

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net"
	"strconv"
)

// SetKlogV sets the logging flags when unit tests are run
func SetKlogV(level int) {
	l := strconv.Itoa(level)
	if f := flag.Lookup("v"); f != nil {
		_ = f.Value.Set(l)
	}
	if f := flag.Lookup("logtostderr"); f != nil {
		_ = f.Value.Set("true")
	}
}

// ReadBodyAndClose reads the whole body and closes the reader
func ReadBodyAndClose(bodyReader io.ReadCloser) ([]byte, error) {
	defer bodyReader.Close()
	return io.ReadAll(bodyReader)
}

// RandHighPort return a free port in the range[1024,65535)
func RandHighPort() (randPort int) {
	for {
		randPort = 1024 + rand.Intn(1<<16-1024)
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", randPort))
		if err == nil {
			ln.Close()
			break
		}
	}
	return
}
