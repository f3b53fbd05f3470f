package xresolver_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ouikit/internal/ouitest"
	"github.com/omeyang/ouikit/pkg/registry/xoui"
	"github.com/omeyang/ouikit/pkg/registry/xresolver"
)

type reloadEvent struct {
	reg *xoui.Registry
	err error
}

func startWatcher(t *testing.T, res *xresolver.Resolver, path string, opts ...xresolver.WatchOption) (*xresolver.Watcher, <-chan reloadEvent) {
	t.Helper()
	events := make(chan reloadEvent, 16)
	opts = append(opts, xresolver.WithCallback(func(reg *xoui.Registry, err error) {
		events <- reloadEvent{reg: reg, err: err}
	}))
	w, err := xresolver.Watch(res, path, opts...)
	require.NoError(t, err)
	w.StartAsync()
	t.Cleanup(func() { assert.NoError(t, w.Stop()) })
	return w, events
}

func waitEvent(t *testing.T, events <-chan reloadEvent) reloadEvent {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return reloadEvent{}
	}
}

func TestWatch_InvalidArgs(t *testing.T) {
	res := newResolver(t, dellRegistry(t))

	_, err := xresolver.Watch(nil, "oui.dat")
	assert.ErrorIs(t, err, xresolver.ErrNilResolver)

	_, err = xresolver.Watch(res, "")
	assert.ErrorIs(t, err, xresolver.ErrEmptyPath)

	_, err = xresolver.Watch(res, filepath.Join(t.TempDir(), "missing", "oui.dat"))
	assert.Error(t, err)
}

func TestWatch_AtomicReplace(t *testing.T) {
	path := ouitest.WriteFile(t, "oui.dat", ouitest.DellStream())
	res := newResolver(t, dellRegistry(t))
	_, events := startWatcher(t, res, path, xresolver.WithDebounce(20*time.Millisecond))

	require.NoError(t, ouitest.Replace(path, ouitest.Stream(time.Now(),
		ouitest.Record{ID: dellID, Name: "Dell Inc"},
		ouitest.Record{ID: vmwareID, Name: "VMware, Inc."},
	)))

	ev := waitEvent(t, events)
	require.NoError(t, ev.err)
	assert.Equal(t, 2, ev.reg.Size())
	assert.Same(t, ev.reg, res.Current())
}

func TestWatch_InPlaceWrite(t *testing.T) {
	path := ouitest.WriteFile(t, "oui.dat", ouitest.DellStream())
	res := newResolver(t, dellRegistry(t))
	_, events := startWatcher(t, res, path, xresolver.WithDebounce(50*time.Millisecond))

	data := ouitest.Stream(time.Now(), ouitest.Record{ID: vmwareID, Name: "VMware, Inc."})
	require.NoError(t, os.WriteFile(path, data, 0o600))

	ev := waitEvent(t, events)
	require.NoError(t, ev.err)
	_, ok := ev.reg.LookupOUI(vmwareID)
	assert.True(t, ok)
}

func TestWatch_BadFileKeepsRegistry(t *testing.T) {
	path := ouitest.WriteFile(t, "oui.dat", ouitest.DellStream())
	initial := dellRegistry(t)
	res := newResolver(t, initial)
	_, events := startWatcher(t, res, path, xresolver.WithDebounce(20*time.Millisecond))

	require.NoError(t, ouitest.Replace(path, []byte{0x00, 0x01}))

	ev := waitEvent(t, events)
	require.ErrorIs(t, ev.err, xoui.ErrTruncatedInput)
	assert.Same(t, initial, ev.reg)
	assert.Same(t, initial, res.Current())
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	path := ouitest.WriteFile(t, "oui.dat", ouitest.DellStream())
	res := newResolver(t, dellRegistry(t))
	_, events := startWatcher(t, res, path, xresolver.WithDebounce(10*time.Millisecond))

	other := filepath.Join(filepath.Dir(path), "other.dat")
	require.NoError(t, os.WriteFile(other, []byte("junk"), 0o600))

	select {
	case ev := <-events:
		t.Fatalf("unexpected reload: %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatch_Debounce(t *testing.T) {
	path := ouitest.WriteFile(t, "oui.dat", ouitest.DellStream())
	res := newResolver(t, dellRegistry(t))
	var calls atomic.Int32
	events := make(chan struct{}, 16)
	w, err := xresolver.Watch(res, path,
		xresolver.WithDebounce(150*time.Millisecond),
		xresolver.WithCallback(func(*xoui.Registry, error) {
			calls.Add(1)
			events <- struct{}{}
		}),
	)
	require.NoError(t, err)
	w.StartAsync()
	defer func() { assert.NoError(t, w.Stop()) }()

	for i := range 5 {
		require.NoError(t, ouitest.Replace(path, ouitest.Stream(time.UnixMilli(int64(i)),
			ouitest.Record{ID: vmwareID, Name: "VMware, Inc."},
		)))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-events:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int64(4), res.Current().LastModified().UnixMilli())
}

func TestWatch_ManualReloadUnchanged(t *testing.T) {
	path := ouitest.WriteFile(t, "oui.dat", ouitest.DellStream())
	reg, err := xoui.LoadFile(path)
	require.NoError(t, err)
	res := newResolver(t, reg)

	var calls atomic.Int32
	w, err := xresolver.Watch(res, path, xresolver.WithCallback(func(*xoui.Registry, error) { calls.Add(1) }))
	require.NoError(t, err)
	defer func() { assert.NoError(t, w.Stop()) }()

	w.Reload()
	assert.Equal(t, int32(0), calls.Load())
	assert.Same(t, reg, res.Current())
}

func TestWatcher_StopLifecycle(t *testing.T) {
	path := ouitest.WriteFile(t, "oui.dat", ouitest.DellStream())
	res := newResolver(t, dellRegistry(t))

	// 未启动直接 Stop
	w, err := xresolver.Watch(res, path)
	require.NoError(t, err)
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	// Stop 后 Start 不再运行
	w.StartAsync()

	// 阻塞式 Start
	w2, err := xresolver.Watch(res, path)
	require.NoError(t, err)
	done := make(chan struct{})
	go func() {
		w2.Start()
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, w2.Stop())
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Stop")
	}
}
