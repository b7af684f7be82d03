// Copyright 2024 Geotoolbox
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package godem

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// ExecProcessor is a Processor driving the gdaldem executable. The zero
// value locates gdaldem through the GDALDEM environment variable, then PATH.
//
// The first invocation resolves the executable and probes its version, which
// also pins the version OptionList compiles against (unless
// SetAssumedVersion was called first). An ExecProcessor is safe for
// concurrent use.
type ExecProcessor struct {
	// Binary overrides the gdaldem executable name or path.
	Binary string

	mu       sync.Mutex
	resolved bool
	path     string
	version  LibVersion
	initErr  error
}

func (p *ExecProcessor) init(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.resolved {
		return p.initErr
	}
	p.resolved = true
	bin := p.Binary
	if bin == "" {
		bin = os.Getenv("GDALDEM")
	}
	if bin == "" {
		bin = "gdaldem"
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		p.initErr = fmt.Errorf("locate gdaldem: %w", err)
		return p.initErr
	}
	p.path = path
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		p.initErr = fmt.Errorf("gdaldem --version: %w", err)
		return p.initErr
	}
	v, err := parseVersionBanner(string(out))
	if err != nil {
		p.initErr = err
		return p.initErr
	}
	p.version = v
	// pin the feature matrix, unless the caller already did
	_ = SetAssumedVersion(v)
	return nil
}

// parseVersionBanner extracts the version from gdaldem --version output,
// e.g. "GDAL 3.8.4, released 2024/02/08"
func parseVersionBanner(banner string) (LibVersion, error) {
	s := strings.TrimSpace(banner)
	const prefix = "GDAL "
	if !strings.HasPrefix(s, prefix) {
		return 0, fmt.Errorf("unexpected gdaldem version banner %q", banner)
	}
	s = s[len(prefix):]
	if i := strings.IndexAny(s, ", "); i != -1 {
		s = s[:i]
	}
	v, err := ParseVersion(s)
	if err != nil {
		return 0, fmt.Errorf("unexpected gdaldem version banner %q", banner)
	}
	return v, nil
}

// Version returns the version reported by the gdaldem executable, resolving
// it first if needed.
func (p *ExecProcessor) Version(ctx context.Context) (LibVersion, error) {
	if err := p.init(ctx); err != nil {
		return 0, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.version, nil
}

// DEMProcessing implements Processor by running
//
//	gdaldem <mode> <srcDS> <dstDS> <switches...>
//
// A nonzero exit status is returned as an error carrying gdaldem's stderr.
func (p *ExecProcessor) DEMProcessing(ctx context.Context, mode string, srcDS string, dstDS string, switches []string) error {
	if err := p.init(ctx); err != nil {
		return err
	}
	args := append([]string{mode, srcDS, dstDS}, switches...)
	cmd := exec.CommandContext(ctx, p.path, args...)
	stderr := bytes.Buffer{}
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("gdaldem %s: %w: %s", mode, err, msg)
		}
		return fmt.Errorf("gdaldem %s: %w", mode, err)
	}
	return nil
}
