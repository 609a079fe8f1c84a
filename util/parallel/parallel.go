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

// Package parallel is a utility package for running concurrent tasks whose
// completion the caller needs to wait on.
package parallel

// Go is like the 'go' keyword but returns a function that blocks until the
// goroutine exits. Its safe to call the returned wait function multiple times.
func Go(run func()) (wait func()) {
	done := make(chan struct{})
	go func() {
		run()
		close(done)
	}()
	return func() {
		<-done
	}
}

// GoCaptureError is like the go keyword but returns a function that blocks
// until the goroutine exits, the returned error from the goroutine function
// is available as the result of calling the returned wait() function. Its
// safe to call the returned wait function multiple times, it'll always
// report the same result.
func GoCaptureError(run func() error) (wait func() error) {
	done := make(chan error, 1)
	go func() {
		done <- run()
		close(done)
	}()
	var resultErr error
	return func() error {
		err, open := <-done
		if open {
			resultErr = err
		}
		return resultErr
	}
}
