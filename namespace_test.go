package lazyext

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/lazyext/internal/ctxlog"
	"github.com/vk/lazyext/internal/testutil"
	"github.com/vk/lazyext/registry"
)

// fakeExt stands in for an extension's namespace value.
type fakeExt struct {
	id int32
}

// newTestNamespace builds a namespace over a fresh, isolated registry with a
// single registered package, returning the init counter alongside.
func newTestNamespace(t *testing.T) (*Namespace, *registry.Registry, *atomic.Int32) {
	t.Helper()

	reg := registry.New()
	var count atomic.Int32
	reg.Register("powerpack", func(ctx context.Context) (any, error) {
		count.Add(1)
		return &fakeExt{id: count.Load()}, nil
	})

	ns := New(Config{
		Name:       "core",
		Loader:     reg,
		Attributes: map[string]any{"version": "0.1.0"},
		Extensions: map[string]string{"ext": "powerpack"},
	})
	return ns, reg, &count
}

func TestResolve_FirstAccessTriggersLoad(t *testing.T) {
	t.Parallel()

	ns, reg, count := newTestNamespace(t)

	require.False(t, reg.Loaded("powerpack"))
	require.Equal(t, int32(0), count.Load())

	handle, err := ns.Resolve(context.Background(), "ext")
	require.NoError(t, err)
	require.IsType(t, &fakeExt{}, handle)

	assert.True(t, reg.Loaded("powerpack"))
	assert.Equal(t, int32(1), count.Load())
}

func TestResolve_IdempotentResolution(t *testing.T) {
	t.Parallel()

	ns, _, count := newTestNamespace(t)
	recorder := testutil.NewLogRecorder()
	ctx := ctxlog.WithLogger(context.Background(), recorder.Logger())

	first, err := ns.Resolve(ctx, "ext")
	require.NoError(t, err)
	second, err := ns.Resolve(ctx, "ext")
	require.NoError(t, err)

	// Both accesses traced, but the extension initialized exactly once and
	// both handles are the same value.
	assert.Equal(t, 2, recorder.CountMessage(traceMessage))
	assert.Equal(t, int32(1), count.Load())
	assert.Same(t, first, second)
}

func TestResolve_UnknownName(t *testing.T) {
	t.Parallel()

	ns, _, count := newTestNamespace(t)
	recorder := testutil.NewLogRecorder()
	ctx := ctxlog.WithLogger(context.Background(), recorder.Logger())

	handle, err := ns.Resolve(ctx, "missing_name")
	require.Error(t, err)
	assert.Nil(t, handle)

	var attrErr *AttributeError
	require.ErrorAs(t, err, &attrErr)
	assert.Equal(t, "core", attrErr.Namespace)
	assert.Equal(t, "missing_name", attrErr.Attr)
	assert.Contains(t, err.Error(), "missing_name")

	// An unknown name never reaches the loader and never traces.
	assert.Equal(t, 0, recorder.CountMessage(traceMessage))
	assert.Equal(t, int32(0), count.Load())
}

func TestResolve_MissingExtension(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	ns := New(Config{
		Name:       "core",
		Loader:     reg,
		Extensions: map[string]string{"ext": "my_framework_ext"},
	})

	handle, err := ns.Resolve(context.Background(), "ext")
	require.Error(t, err)
	assert.Nil(t, handle)

	var missErr *MissingExtensionError
	require.ErrorAs(t, err, &missErr)
	assert.Equal(t, "ext", missErr.Attr)
	assert.Equal(t, "my_framework_ext", missErr.Package)

	// The message names both the virtual attribute and the package.
	assert.Contains(t, err.Error(), "core.ext")
	assert.Contains(t, err.Error(), "my_framework_ext")

	// The loader's failure is preserved as the cause.
	assert.ErrorIs(t, err, registry.ErrNotRegistered)

	// Nothing is recorded as loaded after a failure.
	assert.False(t, reg.Loaded("my_framework_ext"))
}

func TestResolve_EagerAttribute(t *testing.T) {
	t.Parallel()

	ns, reg, count := newTestNamespace(t)
	recorder := testutil.NewLogRecorder()
	ctx := ctxlog.WithLogger(context.Background(), recorder.Logger())

	val, err := ns.Resolve(ctx, "version")
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", val)

	// Eager attributes follow normal lookup: no trace, no load.
	assert.Equal(t, 0, recorder.CountMessage(traceMessage))
	assert.Equal(t, int32(0), count.Load())
	assert.False(t, reg.Loaded("powerpack"))
}

func TestNew_NoEagerCost(t *testing.T) {
	t.Parallel()

	_, reg, count := newTestNamespace(t)

	// Constructing the namespace alone initializes nothing.
	assert.Equal(t, int32(0), count.Load())
	assert.False(t, reg.Loaded("powerpack"))
}

func TestNew_CopiesMaps(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	reg.Register("real", func(ctx context.Context) (any, error) { return "real", nil })

	exts := map[string]string{"ext": "real"}
	attrs := map[string]any{"version": "0.1.0"}
	ns := New(Config{Name: "core", Loader: reg, Attributes: attrs, Extensions: exts})

	// Mutating the caller's maps after construction must not be visible.
	exts["ext"] = "hijacked"
	exts["late"] = "real"
	attrs["version"] = "tampered"

	val, err := ns.Resolve(context.Background(), "ext")
	require.NoError(t, err)
	assert.Equal(t, "real", val)

	version, err := ns.Resolve(context.Background(), "version")
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", version)

	_, err = ns.Resolve(context.Background(), "late")
	var attrErr *AttributeError
	require.ErrorAs(t, err, &attrErr)
}

func TestIntrospection_NeverLoads(t *testing.T) {
	t.Parallel()

	ns, reg, count := newTestNamespace(t)

	assert.Equal(t, []string{"ext"}, ns.Extensions())
	assert.Equal(t, []string{"version"}, ns.Attributes())

	pkg, ok := ns.Extension("ext")
	assert.True(t, ok)
	assert.Equal(t, "powerpack", pkg)

	_, ok = ns.Extension("version")
	assert.False(t, ok)

	assert.Equal(t, int32(0), count.Load())
	assert.False(t, reg.Loaded("powerpack"))
}
