//go:build windows

package display

import (
	"context"
	"fmt"
	"sync"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"

	"wallpaper-aligner/internal/domain"
)

var (
	user32                          = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors         = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW             = user32.NewProc("GetMonitorInfoW")
	procGetDisplayConfigBufferSizes = user32.NewProc("GetDisplayConfigBufferSizes")
	procQueryDisplayConfig          = user32.NewProc("QueryDisplayConfig")
	procDisplayConfigGetDeviceInfo  = user32.NewProc("DisplayConfigGetDeviceInfo")
)

const (
	qdcOnlyActivePaths  = 0x00000002
	qdcVirtualModeAware = 0x00000010

	deviceInfoGetSourceName = 1
	deviceInfoGetTargetName = 2
)

// Win32 struct layouts. Field order and sizes must match the C definitions.

type monitorInfoEx struct {
	CbSize  uint32
	Monitor windows.Rect
	Work    windows.Rect
	Flags   uint32
	Device  [32]uint16
}

type luid struct {
	LowPart  uint32
	HighPart int32
}

type pathSourceInfo struct {
	AdapterID   luid
	ID          uint32
	ModeInfoIdx uint32
	StatusFlags uint32
}

type rational struct {
	Numerator   uint32
	Denominator uint32
}

type pathTargetInfo struct {
	AdapterID        luid
	ID               uint32
	ModeInfoIdx      uint32
	OutputTechnology uint32
	Rotation         uint32
	Scaling          uint32
	RefreshRate      rational
	ScanLineOrdering uint32
	TargetAvailable  int32
	StatusFlags      uint32
}

type pathInfo struct {
	Source pathSourceInfo
	Target pathTargetInfo
	Flags  uint32
}

type modeInfo struct {
	InfoType  uint32
	ID        uint32
	AdapterID luid
	Info      [6]uint64 // union of target/source/desktop image mode
}

type deviceInfoHeader struct {
	Type      uint32
	Size      uint32
	AdapterID luid
	ID        uint32
}

type targetDeviceName struct {
	Header                    deviceInfoHeader
	Flags                     uint32
	OutputTechnology          uint32
	EdidManufactureID         uint16
	EdidProductCodeID         uint16
	ConnectorInstance         uint32
	MonitorFriendlyDeviceName [64]uint16
	MonitorDevicePath         [128]uint16
}

type sourceDeviceName struct {
	Header            deviceInfoHeader
	ViewGdiDeviceName [32]uint16
}

type enumeratedMonitor struct {
	handle uintptr
	bounds windows.Rect
}

// The callback is created once; EnumDisplayMonitors invokes it synchronously
// while enumMu is held.
var (
	enumMu       sync.Mutex
	enumMonitors []enumeratedMonitor
	enumCallback = windows.NewCallback(func(hMonitor, _ uintptr, rect *windows.Rect, _ uintptr) uintptr {
		enumMonitors = append(enumMonitors, enumeratedMonitor{handle: hMonitor, bounds: *rect})
		return 1
	})
)

// Win32 asks Windows for the active monitors.
type Win32 struct {
	log *zap.Logger
}

// NewPlatform returns the Win32 provider.
func NewPlatform(log *zap.Logger) domain.DisplayProvider {
	return &Win32{log: log}
}

// Configuration enumerates monitors in the order Windows reports them.
func (w *Win32) Configuration(ctx context.Context) (domain.Configuration, error) {
	if err := ctx.Err(); err != nil {
		return domain.Configuration{}, err
	}
	names := w.monitorNames()

	monitors, err := enumerateMonitors()
	if err != nil {
		return domain.Configuration{}, err
	}
	if len(monitors) == 0 {
		return domain.Configuration{}, domain.ErrNoDisplays
	}

	displays := make([]domain.Display, 0, len(monitors))
	for _, m := range monitors {
		name := domain.UnknownDisplayName
		device, err := gdiDeviceName(m.handle)
		if err != nil {
			w.log.Warn("unable to get monitor info", zap.Error(err))
		} else if n, ok := names[device]; ok && n != "" {
			name = n
		}
		displays = append(displays, domain.Display{
			Name: name,
			Bounds: domain.Rectangle{
				MinX: int(m.bounds.Left),
				MaxX: int(m.bounds.Right),
				MinY: int(m.bounds.Top),
				MaxY: int(m.bounds.Bottom),
			},
		})
	}
	w.log.Debug("detected displays via Win32", zap.Int("displays", len(displays)))
	return domain.NewConfiguration(displays), nil
}

func enumerateMonitors() ([]enumeratedMonitor, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumMonitors = nil
	r, _, callErr := procEnumDisplayMonitors.Call(0, 0, enumCallback, 0)
	if r == 0 {
		return nil, fmt.Errorf("unable to get display configuration: %w", callErr)
	}
	out := enumMonitors
	enumMonitors = nil
	return out, nil
}

func gdiDeviceName(hMonitor uintptr) (string, error) {
	var mi monitorInfoEx
	mi.CbSize = uint32(unsafe.Sizeof(mi))
	r, _, callErr := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi)))
	if r == 0 {
		return "", callErr
	}
	return windows.UTF16ToString(mi.Device[:]), nil
}

// monitorNames maps GDI device names (\\.\DISPLAY1) to monitor friendly names.
// Failures are logged and yield a partial map.
func (w *Win32) monitorNames() map[string]string {
	names := make(map[string]string)
	flags := uintptr(qdcOnlyActivePaths | qdcVirtualModeAware)

	var pathCount, modeCount uint32
	r, _, _ := procGetDisplayConfigBufferSizes.Call(
		flags,
		uintptr(unsafe.Pointer(&pathCount)),
		uintptr(unsafe.Pointer(&modeCount)),
	)
	if r != 0 {
		w.log.Warn("unable to get display configuration buffer sizes", zap.Error(windows.Errno(r)))
		return names
	}
	if pathCount == 0 {
		return names
	}

	paths := make([]pathInfo, pathCount)
	modes := make([]modeInfo, max(modeCount, 1))
	r, _, _ = procQueryDisplayConfig.Call(
		flags,
		uintptr(unsafe.Pointer(&pathCount)),
		uintptr(unsafe.Pointer(&paths[0])),
		uintptr(unsafe.Pointer(&modeCount)),
		uintptr(unsafe.Pointer(&modes[0])),
		0,
	)
	if r != 0 {
		w.log.Warn("unable to query display config", zap.Error(windows.Errno(r)))
		return names
	}
	paths = paths[:pathCount]

	for _, p := range paths {
		target := targetDeviceName{Header: deviceInfoHeader{
			Type:      deviceInfoGetTargetName,
			Size:      uint32(unsafe.Sizeof(targetDeviceName{})),
			AdapterID: p.Target.AdapterID,
			ID:        p.Target.ID,
		}}
		if r, _, _ := procDisplayConfigGetDeviceInfo.Call(uintptr(unsafe.Pointer(&target))); r != 0 {
			w.log.Warn("unable to get target name", zap.Error(windows.Errno(r)))
			continue
		}

		source := sourceDeviceName{Header: deviceInfoHeader{
			Type:      deviceInfoGetSourceName,
			Size:      uint32(unsafe.Sizeof(sourceDeviceName{})),
			AdapterID: p.Target.AdapterID,
			ID:        p.Source.ID,
		}}
		if r, _, _ := procDisplayConfigGetDeviceInfo.Call(uintptr(unsafe.Pointer(&source))); r != 0 {
			w.log.Warn("unable to get source name", zap.Error(windows.Errno(r)))
			continue
		}

		names[windows.UTF16ToString(source.ViewGdiDeviceName[:])] =
			windows.UTF16ToString(target.MonitorFriendlyDeviceName[:])
	}
	return names
}

var _ domain.DisplayProvider = (*Win32)(nil)
