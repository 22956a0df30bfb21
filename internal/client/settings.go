package client

// Setting identifies a client setting reported to the server.
type Setting uint16

const (
	SettingNoGun Setting = iota
	SettingNoBlend
	SettingRecording
	SettingPlayerUpdates
	SettingFPS
)

// SettingsSink forwards client settings to the server.
type SettingsSink interface {
	SendSetting(s Setting, value int)
}
