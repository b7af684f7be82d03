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
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// LibVersion is the GDAL lib versioning scheme, i.e. GDAL_VERSION_NUM:
// major*1000000 + minor*10000 + revision*100
type LibVersion int

// VersionFrom returns the LibVersion for major.minor.revision
func VersionFrom(major, minor, revision int) LibVersion {
	return LibVersion(major*1000000 + minor*10000 + revision*100)
}

// Major returns the GDAL major version (e.g. "3" in 3.2.1)
func (lv LibVersion) Major() int {
	return int(lv) / 1000000
}

// Minor returns the GDAL minor version (e.g. "2" in 3.2.1)
func (lv LibVersion) Minor() int {
	return (int(lv) % 1000000) / 10000
}

// Revision returns the GDAL revision version (e.g. "1" in 3.2.1)
func (lv LibVersion) Revision() int {
	return (int(lv) % 10000) / 100
}

func (lv LibVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", lv.Major(), lv.Minor(), lv.Revision())
}

// CheckMin returns true if lv is at least major.minor.revision
func (lv LibVersion) CheckMin(major, minor, revision int) bool {
	return lv >= VersionFrom(major, minor, revision)
}

// ParseVersion parses a dotted version string, e.g. "3.8.4" or "3.8"
func ParseVersion(version string) (LibVersion, error) {
	parts := strings.Split(version, ".")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("malformed gdal version %q", version)
	}
	num := [3]int{}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("malformed gdal version %q", version)
		}
		num[i] = n
	}
	return VersionFrom(num[0], num[1], num[2]), nil
}

// Feature identifies a gdaldem capability that only exists from a given gdal
// version onwards.
type Feature int

const (
	// TRIAlgorithmSelection is the "-alg" switch of gdaldem TRI. Before
	// gdal 3.3 Wilson is the only TRI algorithm and the switch does not
	// exist.
	TRIAlgorithmSelection Feature = iota
	// HillshadeMultidirectional is the "-multidirectional" switch of
	// gdaldem hillshade, added in gdal 2.2
	HillshadeMultidirectional
	// HillshadeIgor is the "-igor" switch of gdaldem hillshade, added in
	// gdal 3.0
	HillshadeIgor
)

var featureVersions = map[Feature]LibVersion{
	TRIAlgorithmSelection:     VersionFrom(3, 3, 0),
	HillshadeMultidirectional: VersionFrom(2, 2, 0),
	HillshadeIgor:             VersionFrom(3, 0, 0),
}

// Supports returns true if the given feature exists in gdal version lv.
// Unknown features are unsupported.
func (lv LibVersion) Supports(feature Feature) bool {
	min, ok := featureVersions[feature]
	return ok && lv >= min
}

var (
	versionMu      sync.Mutex
	versionPinned  bool
	assumedVersion = VersionFrom(3, 8, 0)
)

// SetAssumedVersion pins the gdal version that OptionList compiles against.
// It may be called at most once, before or instead of the probe performed by
// ExecProcessor; subsequent calls fail and leave the pinned version
// untouched.
func SetAssumedVersion(v LibVersion) error {
	versionMu.Lock()
	defer versionMu.Unlock()
	if versionPinned {
		return errors.New("gdal version already pinned")
	}
	versionPinned = true
	assumedVersion = v
	return nil
}

// AssumedVersion returns the gdal version that OptionList compiles against.
// Defaults to 3.8.0 until pinned by SetAssumedVersion or by an
// ExecProcessor version probe.
func AssumedVersion() LibVersion {
	versionMu.Lock()
	defer versionMu.Unlock()
	return assumedVersion
}
