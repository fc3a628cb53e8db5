// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// watchDebounce is how long the watcher waits after the first event
// before re-reading, so a burst of writes produces one callback.
const watchDebounce = 50 * time.Millisecond

// Watch follows the progress file at path and calls onChange with the
// new set whenever the decoded contents differ from the last set seen.
// A deleted file reads as the empty set. onChange runs on the watcher
// goroutine.
//
// The parent directory is watched rather than the file so that atomic
// replacements (rename over the old inode) are seen. The returned stop
// function ends the watcher; it is safe to call more than once.
func Watch(path string, onChange func(Set)) (func(), error) {
	absolutePath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	initial, err := readSet(absolutePath)
	if err != nil {
		return nil, err
	}

	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, err
	}

	mask := uint32(unix.IN_CLOSE_WRITE | unix.IN_MOVED_TO | unix.IN_DELETE)
	if _, err := unix.InotifyAddWatch(fd, filepath.Dir(absolutePath), mask); err != nil {
		unix.Close(fd)
		return nil, err
	}

	stopChannel := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		watchLoop(fd, absolutePath, initial, onChange, stopChannel)
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			close(stopChannel)
			<-done
		})
	}
	return stop, nil
}

// readSet loads the set without logging; the watcher has no use for
// the rejected tokens.
func readSet(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	set, _ := Parse(data)
	return set, nil
}

// watchLoop polls the inotify fd with a 100ms timeout so the stop
// channel is checked regularly. It closes fd before returning.
func watchLoop(fd int, path string, previous Set, onChange func(Set), stopChannel <-chan struct{}) {
	defer unix.Close(fd)

	filename := filepath.Base(path)
	buffer := make([]byte, 4096)

	for {
		select {
		case <-stopChannel:
			return
		default:
		}

		pollDescriptors := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		count, err := unix.Poll(pollDescriptors, 100)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if count == 0 {
			continue
		}

		bytesRead, err := unix.Read(fd, buffer)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}

		if !inotifyMatchesFile(buffer[:bytesRead], filename) {
			continue
		}

		time.Sleep(watchDebounce)
		drainInotifyEvents(fd, buffer)

		current, err := readSet(path)
		if err != nil {
			// Unreadable mid-replace; the completing write sends
			// another event.
			continue
		}
		if current == previous {
			continue
		}
		previous = current
		onChange(current)
	}
}

// inotifyMatchesFile reports whether any event in buffer names
// targetFilename. Event layout from inotify(7): wd int32, mask uint32,
// cookie uint32, len uint32, then len bytes of NUL-padded name.
func inotifyMatchesFile(buffer []byte, targetFilename string) bool {
	offset := 0
	for offset+unix.SizeofInotifyEvent <= len(buffer) {
		nameLength := int(binary.NativeEndian.Uint32(buffer[offset+12 : offset+16]))
		eventSize := unix.SizeofInotifyEvent + nameLength
		if offset+eventSize > len(buffer) {
			break
		}

		if nameLength > 0 {
			name := buffer[offset+unix.SizeofInotifyEvent : offset+eventSize]
			if nullTerminated(name) == targetFilename {
				return true
			}
		}

		offset += eventSize
	}
	return false
}

func nullTerminated(data []byte) string {
	for index, b := range data {
		if b == 0 {
			return string(data[:index])
		}
	}
	return string(data)
}

// drainInotifyEvents discards queued events until the fd would block.
func drainInotifyEvents(fd int, buffer []byte) {
	for {
		if _, err := unix.Read(fd, buffer); err != nil {
			return
		}
	}
}
