package scaffold

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/stamp/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPlan(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile("meta/runtime.yml", "edited\n")
	walker := newTestWalker(env, testutil.BundleFS(collectionBundles()))

	list, err := walker.Collect([]string{"collection_project"}, "collection_project", env.Root, collectionData())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderPlan(&buf, list, PlanOptions{Diff: true}))
	out := buf.String()

	assert.Contains(t, out, "new      file /work/galaxy.yml\n")
	assert.Contains(t, out, "new      dir  /work/plugins\n")
	assert.Contains(t, out, "conflict file /work/meta/runtime.yml\n")
	assert.Contains(t, out, "    -edited\n")
	assert.Contains(t, out, "1 conflicting")
}

func TestRenderPlanEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPlan(&buf, nil, PlanOptions{}))
	assert.Equal(t, "nothing to do, destination is up to date\n", buf.String())
}
