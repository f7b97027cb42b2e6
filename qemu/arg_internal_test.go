// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgumentEqual(t *testing.T) {
	tests := []struct {
		name  string
		a     Argument
		b     Argument
		equal bool
	}{
		{
			name:  "both empty",
			a:     Argument{},
			b:     Argument{},
			equal: true,
		},
		{
			name:  "one empty",
			a:     Argument{name: "t"},
			b:     Argument{},
			equal: false,
		},
		{
			name:  "same unique name different value",
			a:     Argument{name: "t", value: "5"},
			b:     Argument{name: "t", value: "6"},
			equal: true,
		},
		{
			name:  "same non-unique name different value",
			a:     Argument{name: "t", value: "5", nonUniqueName: true},
			b:     Argument{name: "t", value: "6", nonUniqueName: true},
			equal: false,
		},
		{
			name:  "same non-unique name and value",
			a:     Argument{name: "t", value: "5", nonUniqueName: true},
			b:     Argument{name: "t", value: "5", nonUniqueName: true},
			equal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.equal {
				assert.True(t, tt.a.Equal(tt.b), "a")
				assert.True(t, tt.b.Equal(tt.a), "b")
			} else {
				assert.False(t, tt.a.Equal(tt.b), "a")
				assert.False(t, tt.b.Equal(tt.a), "b")
			}
		})
	}
}

func TestArgumentConstructors(t *testing.T) {
	unique := UniqueArg("smp", "cpus=2", "maxcpus=4")
	assert.Equal(t, "smp", unique.Name())
	assert.Equal(t, "cpus=2,maxcpus=4", unique.Value())
	assert.True(t, unique.UniqueName())

	repeatable := RepeatableArg("drive", "file=/a.img")
	assert.Equal(t, "drive", repeatable.Name())
	assert.False(t, repeatable.UniqueName())
}

func TestBuildArgumentStrings(t *testing.T) {
	tests := []struct {
		name        string
		args        []Argument
		expected    []string
		expectedErr error
	}{
		{
			name: "empty",
			args: []Argument{},
			expected: []string{},
		},
		{
			name: "keeps order and skips empty values",
			args: []Argument{
				UniqueArg("enable-kvm"),
				UniqueArg("m", "size=512"),
				RepeatableArg("drive", "file=/a.img", "media=disk"),
				RepeatableArg("drive", "file=/b.img", "media=disk"),
			},
			expected: []string{
				"-enable-kvm",
				"-m", "size=512",
				"-drive", "file=/a.img,media=disk",
				"-drive", "file=/b.img,media=disk",
			},
		},
		{
			name: "unique name collision",
			args: []Argument{
				UniqueArg("m", "size=512"),
				UniqueArg("m", "size=1024"),
			},
			expectedErr: ErrArgumentCollision,
		},
		{
			name: "repeatable value collision",
			args: []Argument{
				RepeatableArg("drive", "file=/a.img"),
				RepeatableArg("drive", "file=/a.img"),
			},
			expectedErr: ErrArgumentCollision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := buildArgumentStrings(tt.args)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}
