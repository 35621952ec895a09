package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/vg"
)

// ErrNoHALDevice is returned when a provider's device cannot be reduced to
// a hal.Device.
var ErrNoHALDevice = errors.New("gpu: provider does not expose a hal.Device")

// DeviceFromProvider returns the HAL device behind p, so a host that already
// owns a device can share it:
//
//	device, err := gpu.DeviceFromProvider(app)
//	modules, err := shaders.CreateModules(device)
//
// The provider may expose the device through HalDevice() any, return a
// hal.Device from Device(), or return a wrapper whose HalDevice method
// yields one (as *wgpu.Device does).
func DeviceFromProvider(p gpucontext.DeviceProvider) (hal.Device, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil provider", ErrNoHALDevice)
	}
	type halProvider interface {
		HalDevice() any
	}
	type halWrapper interface {
		HalDevice() hal.Device
	}

	var device hal.Device
	if hp, ok := p.(halProvider); ok {
		device, _ = hp.HalDevice().(hal.Device)
	}
	if device == nil {
		switch d := p.Device().(type) {
		case hal.Device:
			device = d
		case halWrapper:
			device = d.HalDevice()
		}
	}
	if device == nil {
		return nil, ErrNoHALDevice
	}
	info := p.AdapterInfo()
	vg.Logger().Debug("gpu: using provider device",
		"adapter", info.Name, "type", info.Type, "format", p.SurfaceFormat())
	return device, nil
}

// SoftwareAdapter reports whether p runs on a CPU emulated adapter, where
// the software backend is usually faster than shading on the device.
func SoftwareAdapter(p gpucontext.DeviceProvider) bool {
	return p != nil && p.AdapterInfo().Type == gpucontext.AdapterTypeSoftware
}
