package constants

import "time"

const AppName = "hueportal"
const Version = "0.1.0"

const DefaultDeviceType = "hueportal#vr"

// the bridge handles roughly 10 light commands per second
const LightCommandInterval = 100 * time.Millisecond

const DefaultRequestTimeout = 10 * time.Second
const DefaultDiscoveryTimeout = 3 * time.Second
const ColorDebounceWindow = 250 * time.Millisecond
