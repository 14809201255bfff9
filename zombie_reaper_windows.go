// +build windows

package main

// ReapZombie is not needed on windows
func ReapZombie() {
}
