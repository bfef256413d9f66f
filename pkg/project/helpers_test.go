package project

import (
	"testing"

	"github.com/arthur-debert/stamp/pkg/config"
	"github.com/arthur-debert/stamp/pkg/resources"
	"github.com/arthur-debert/stamp/pkg/templar"
	"github.com/arthur-debert/stamp/pkg/testutil"
)

const testID = "1a2b3c4d-5e6f-4a5b-8c7d-0123456789ab"

type testSetup struct {
	env      *Env
	te       *testutil.TestEnvironment
	prompter *testutil.MockPrompter
	runner   *Runner
}

func newTestSetup(t *testing.T) *testSetup {
	t.Helper()
	te := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	prompter := &testutil.MockPrompter{}
	env := &Env{
		FS:       te.FS,
		Output:   te.Output,
		Prompter: prompter,
		Config:   config.Default(),
		Bundles:  resources.FS(),
		Renderer: templar.New(),
		Version:  "1.2.3",
		NewID:    func() string { return testID },
	}
	return &testSetup{env: env, te: te, prompter: prompter, runner: NewRunner(env)}
}

func (s *testSetup) run(t *testing.T, kind Kind, opts map[string]interface{}, run RunOptions) error {
	t.Helper()
	sc, err := Resolve(kind, opts)
	if err != nil {
		return err
	}
	return s.runner.Run(sc, run)
}
