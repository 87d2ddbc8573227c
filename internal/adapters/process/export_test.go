package process

// SetExecForTest replaces the exec function and returns a restore func.
func SetExecForTest(fn func(path string, argv []string, env []string) error) func() {
	original := execFn
	execFn = fn
	return func() { execFn = original }
}
