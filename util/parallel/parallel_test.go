// Copyright 2026 The Axiolotl Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parallel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Go(t *testing.T) {
	ran := false
	wait := Go(func() {
		ran = true
	})
	wait()
	wait() // safe to call again
	assert.True(t, ran)
}

func Test_GoCaptureError(t *testing.T) {
	expErr := errors.New("borked")
	wait := GoCaptureError(func() error {
		return expErr
	})
	assert.Equal(t, expErr, wait())
	assert.Equal(t, expErr, wait())

	wait = GoCaptureError(func() error {
		return nil
	})
	assert.NoError(t, wait())
	assert.NoError(t, wait())
}
