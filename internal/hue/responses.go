package hue

// BridgeDescriptor is an entry returned by bridge discovery.
type BridgeDescriptor struct {
	ID                string `json:"id"`
	InternalIPAddress string `json:"internalipaddress"`
	Port              int    `json:"port,omitempty"`
}

type createUserRequest struct {
	DeviceType string `json:"devicetype"`
}

// LightState is the subset of a light's runtime state the fixtures layer reads.
type LightState struct {
	On  bool `json:"on"`
	Bri int  `json:"bri"`
	Hue int  `json:"hue"`
	Sat int  `json:"sat"`
}

type Light struct {
	Name  string     `json:"name"`
	Type  string     `json:"type"`
	State LightState `json:"state"`
}
