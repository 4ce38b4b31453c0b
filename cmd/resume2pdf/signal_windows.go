//go:build windows

package main

import "os"

// stopSignals cancel a running command. SIGTERM does not exist on Windows.
var stopSignals = []os.Signal{os.Interrupt}
