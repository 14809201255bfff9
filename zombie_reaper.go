// +build !windows

package main

import (
	reaper "github.com/ochinchina/go-reaper"
)

// ReapZombie reap the zombie child processes left by fire-and-forget launches
func ReapZombie() {
	go reaper.Reap()
}
