//go:build linux

package preview

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyF4 = 62
)

// timevalSize is the size of struct timeval at the head of input_event.
var timevalSize = binary.Size(unix.Timeval{})

// inputEventSize is sizeof(struct input_event): timeval + u16 type +
// u16 code + s32 value.
var inputEventSize = timevalSize + 2 + 2 + 4

// startExitOnF4 watches evdev devices under /dev/input/event* and calls
// onExit once when F4 goes down. Without input devices it logs and
// returns.
func startExitOnF4(ctx context.Context, logger Logger, onExit func()) {
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		logger.Infof("input", "no evdev devices found for F4 exit")
		return
	}

	var once sync.Once
	trigger := func() {
		once.Do(func() {
			logger.Infof("input", "F4 pressed: exiting")
			onExit()
		})
	}
	for _, p := range paths {
		go watchDevice(ctx, p, trigger)
	}
}

func watchDevice(ctx context.Context, path string, onF4 func()) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer f.Close()

	buf := make([]byte, 64*inputEventSize)
	for ctx.Err() == nil {
		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		for _, code := range keyPresses(buf[:n], timevalSize) {
			if code == keyF4 {
				onF4()
				return
			}
		}
	}
}

// keyPresses decodes a run of input_event records and returns the codes of
// keys that went down. Trailing partial records are ignored.
func keyPresses(buf []byte, tvSize int) []uint16 {
	size := tvSize + 8
	var codes []uint16
	for off := 0; off+size <= len(buf); off += size {
		rec := buf[off : off+size]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ == evKey && value == 1 {
			codes = append(codes, code)
		}
	}
	return codes
}
