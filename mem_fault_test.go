//go:build !windows

package patchingo

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// noAccessPage maps one anonymous page with all access revoked. The fake
// protector flips nothing, so touching it through Read or Write really traps.
func noAccessPage(t *testing.T) uintptr {
	t.Helper()
	page, err := unix.Mmap(-1, 0, int(pageSize), unix.PROT_NONE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	require.NoError(t, err)
	t.Cleanup(func() { _ = unix.Munmap(page) })
	return uintptr(unsafe.Pointer(&page[0]))
}

func TestReadFaultedAccess(t *testing.T) {
	fp := &fakeProtector{}
	addr := noAccessPage(t)

	_, err := Read[uint32](fp, addr)
	assert.ErrorIs(t, err, ErrFaultedAccess)
	// The restore still runs after a trapped access.
	assert.Equal(t, 1, fp.changes)
	assert.Equal(t, 1, fp.restores)
}

func TestWriteFaultedAccess(t *testing.T) {
	fp := &fakeProtector{}
	addr := noAccessPage(t)

	err := Write[uint32](fp, addr, 7)
	assert.ErrorIs(t, err, ErrFaultedAccess)
	assert.Equal(t, 1, fp.restores)
}

func TestReadBytesFaultedAccess(t *testing.T) {
	fp := &fakeProtector{}
	addr := noAccessPage(t)

	_, err := readBytes(fp, addr, decodeWindow)
	assert.ErrorIs(t, err, ErrFaultedAccess)
}
