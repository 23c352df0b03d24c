package player

import (
	"fmt"
	"time"
)

func init() {
	register(mpcHC{})
	register(mpv{})
	register(vlc{})
}

// mpcHC drives Media Player Classic - Home Cinema. The absolute paths
// cover the standalone install and the K-Lite bundle locations.
type mpcHC struct{}

func (mpcHC) Name() string { return "mpc-hc" }

func (mpcHC) Args(videoPath string, seek time.Duration) []string {
	return []string{videoPath, "/start", clockSeek(seek)}
}

func (mpcHC) Binaries() []string {
	return []string{
		"mpc-hc64.exe",
		"mpc-hc.exe",
		`C:\Program Files\MPC-HC\mpc-hc64.exe`,
		`C:\Program Files (x86)\MPC-HC\mpc-hc.exe`,
		`C:\Program Files\K-Lite Codec Pack\MPC-HC64\mpc-hc64.exe`,
		`C:\Program Files (x86)\K-Lite Codec Pack\MPC-HC64\mpc-hc64.exe`,
	}
}

type mpv struct{}

func (mpv) Name() string { return "mpv" }

func (mpv) Args(videoPath string, seek time.Duration) []string {
	return []string{fmt.Sprintf("--start=%s", clockSeek(seek)), videoPath}
}

func (mpv) Binaries() []string {
	return []string{"mpv"}
}

type vlc struct{}

func (vlc) Name() string { return "vlc" }

func (vlc) Args(videoPath string, seek time.Duration) []string {
	secs := int(seek.Seconds())
	return []string{fmt.Sprintf("--start-time=%d", secs), videoPath}
}

func (vlc) Binaries() []string {
	return []string{"vlc", "/Applications/VLC.app/Contents/MacOS/VLC"}
}
