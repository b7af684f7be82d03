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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibVersion(t *testing.T) {
	v := VersionFrom(3, 2, 1)
	assert.Equal(t, 3, v.Major())
	assert.Equal(t, 2, v.Minor())
	assert.Equal(t, 1, v.Revision())
	assert.Equal(t, "3.2.1", v.String())

	assert.True(t, v.CheckMin(3, 2, 1))
	assert.True(t, v.CheckMin(3, 1, 9))
	assert.True(t, v.CheckMin(2, 9, 9))
	assert.False(t, v.CheckMin(3, 2, 2))
	assert.False(t, v.CheckMin(3, 3, 0))
	assert.False(t, v.CheckMin(4, 0, 0))
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("3.8.4")
	require.NoError(t, err)
	assert.Equal(t, VersionFrom(3, 8, 4), v)

	v, err = ParseVersion("3.8")
	require.NoError(t, err)
	assert.Equal(t, VersionFrom(3, 8, 0), v)

	for _, malformed := range []string{"", "3", "3.8.4.1", "3.x", "-3.8", "3.8.x"} {
		_, err = ParseVersion(malformed)
		assert.Error(t, err, "version %q", malformed)
	}
}

func TestSupports(t *testing.T) {
	assert.True(t, VersionFrom(3, 3, 0).Supports(TRIAlgorithmSelection))
	assert.True(t, VersionFrom(3, 8, 0).Supports(TRIAlgorithmSelection))
	assert.False(t, VersionFrom(3, 2, 3).Supports(TRIAlgorithmSelection))

	assert.True(t, VersionFrom(2, 2, 0).Supports(HillshadeMultidirectional))
	assert.False(t, VersionFrom(2, 1, 4).Supports(HillshadeMultidirectional))

	assert.True(t, VersionFrom(3, 0, 0).Supports(HillshadeIgor))
	assert.False(t, VersionFrom(2, 4, 0).Supports(HillshadeIgor))

	assert.False(t, VersionFrom(3, 8, 0).Supports(Feature(-1)))
}

func TestSetAssumedVersionOnce(t *testing.T) {
	// other tests rely on the assumed version gating TRI algorithm
	// selection open, so pin to something >= 3.3
	err := SetAssumedVersion(VersionFrom(3, 8, 4))
	if err == nil {
		assert.Equal(t, VersionFrom(3, 8, 4), AssumedVersion())
	}
	require.Error(t, SetAssumedVersion(VersionFrom(3, 1, 0)))
	assert.True(t, AssumedVersion().Supports(TRIAlgorithmSelection))
}
