// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

// With creates a pool labeled label, pushes it as the current pool, runs
// fn, then pops and deletes the pool on every exit path, including a panic
// from fn.
func (a *Allocator) With(label string, fn func(h Handle) error) (err error) {
	h, err := a.New(label)
	if err != nil {
		return err
	}
	defer func() {
		if delErr := a.Delete(h); delErr != nil && err == nil {
			err = delErr
		}
	}()

	if err = a.Push(h); err != nil {
		return err
	}
	defer func() {
		if popErr := a.Pop(); popErr != nil && err == nil {
			err = popErr
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			if err == nil {
				err = newError(CodeSyse)
			}
			panic(r)
		}
	}()

	return fn(h)
}

// With runs fn against a freshly created, automatically-released pool on
// the default Allocator.
func With(label string, fn func(h Handle) error) error {
	return defaultAllocator.With(label, fn)
}
