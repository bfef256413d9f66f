package scaffold

import (
	"testing/fstest"

	"github.com/arthur-debert/stamp/pkg/templar"
	"github.com/arthur-debert/stamp/pkg/testutil"
)

func newTestWalker(env *testutil.TestEnvironment, bundles fstest.MapFS) *Walker {
	return NewWalker(WalkerOptions{
		Bundles:   bundles,
		FS:        env.FS,
		Output:    env.Output,
		Renderer:  templar.New(),
		Planner:   NewPathPlanner(".tmpl"),
		MetaFile:  "__meta__.yml",
		SkipDirs:  []string{"__pycache__"},
		SkipFiles: []string{"*.pyc"},
	})
}

func newTestCopier(env *testutil.TestEnvironment) *Copier {
	return NewCopier(env.FS, env.Output, 0644, 0755)
}

func devfileBundle() fstest.MapFS {
	return testutil.BundleFS(map[string]string{
		"common/devfile/devfile.yaml.tmpl": "name: {{ .dev_file_name }}",
	})
}

// countingApplier records whether Copy was reached.
type countingApplier struct {
	calls int
	inner Applier
}

func (c *countingApplier) Copy(list FileList) error {
	c.calls++
	if c.inner == nil {
		return nil
	}
	return c.inner.Copy(list)
}
