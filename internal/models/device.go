// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package models

// DeviceType is the device classification a tracked request was made from.
// Payloads may carry any string; these are the values the tracker emits.
type DeviceType string

const (
	DevicePC      DeviceType = "pc"
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
	DeviceBot     DeviceType = "bot"
	DeviceUnknown DeviceType = "unknown"
)

var deviceLabels = map[DeviceType]string{
	DevicePC:      "PC",
	DeviceMobile:  "Mobile",
	DeviceTablet:  "Tablet",
	DeviceBot:     "Bot",
	DeviceUnknown: "Unknown",
}

// KnownDeviceTypes returns the tracker's device types in display order.
func KnownDeviceTypes() []DeviceType {
	return []DeviceType{DevicePC, DeviceMobile, DeviceTablet, DeviceBot, DeviceUnknown}
}

// Label returns the human readable label, or the raw value for unknown types.
func (d DeviceType) Label() string {
	if label, ok := deviceLabels[d]; ok {
		return label
	}
	return string(d)
}

// DeviceTypeInfo describes a device type for API listings.
type DeviceTypeInfo struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DeviceTypeInfos lists every known device type with its label.
func DeviceTypeInfos() []DeviceTypeInfo {
	known := KnownDeviceTypes()
	infos := make([]DeviceTypeInfo, 0, len(known))
	for _, d := range known {
		infos = append(infos, DeviceTypeInfo{Value: string(d), Label: d.Label()})
	}
	return infos
}
