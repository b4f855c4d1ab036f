package realsense

import (
	"fmt"

	"github.com/teslashibe/go-realsense/internal/native"
)

// Product line masks for QueryDevices.
const (
	ProductAny      = 0xff
	ProductAnyIntel = 0xfe
	ProductNonIntel = 0x01
	ProductD400     = 0x02
	ProductSR300    = 0x04
	ProductL500     = 0x08
	ProductT200     = 0x10
	ProductDepth    = ProductD400 | ProductSR300 | ProductL500 | ProductT200
)

// Context is the root object of the native library. It may be shared
// read-only by multiple pipelines.
type Context struct {
	lib native.Lib
	h   native.Handle
}

// NewContext opens the native backend and creates a context in it.
func NewContext() (*Context, error) {
	lib, err := native.Open()
	if err != nil {
		return nil, err
	}
	return newContext(lib)
}

func newContext(lib native.Lib) (*Context, error) {
	h, raw := lib.CreateContext(0)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("create context: %w", err)
	}
	return &Context{lib: lib, h: mustHandle(h, "context")}, nil
}

// QueryDevices enumerates attached devices matching the product mask. A
// device that fails to open mid-enumeration is skipped, not fatal.
func (c *Context) QueryDevices(productMask int) ([]*Device, error) {
	list, raw := c.lib.QueryDevices(c.h, productMask)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("query devices: %w", err)
	}
	defer c.lib.DeleteDeviceList(list)

	n, raw := c.lib.DeviceListSize(list)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("device list size: %w", err)
	}

	devices := make([]*Device, 0, n)
	for i := 0; i < n; i++ {
		h, raw := c.lib.CreateDevice(list, i)
		if err := checkError(raw); err != nil {
			continue
		}
		devices = append(devices, &Device{lib: c.lib, h: mustHandle(h, "device"), shouldDrop: true})
	}
	return devices, nil
}

// CreateDeviceHub creates a hub that blocks until a device is available.
func (c *Context) CreateDeviceHub() (*DeviceHub, error) {
	h, raw := c.lib.CreateDeviceHub(c.h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("create device hub: %w", err)
	}
	return &DeviceHub{lib: c.lib, h: mustHandle(h, "device hub")}, nil
}

// Close releases the native context. Pipelines created from this context must
// be closed first.
func (c *Context) Close() error {
	if c.h != 0 {
		c.lib.DeleteContext(c.h)
		c.h = 0
	}
	return nil
}
