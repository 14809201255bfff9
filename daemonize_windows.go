// +build windows

package main

// Deamonize is not supported on windows, run the function directly
func Deamonize(proc func()) {
	proc()
}
