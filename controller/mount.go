package controller

import (
	"github.com/sarchlab/gmt-dos/catalog"
	"github.com/sarchlab/gmt-dos/component"
)

// mountDriveWidth is the feedback vector width per axis drive, matching
// the Simulink-exported mount filter's per-axis feedback port width.
const mountDriveWidth = 20

// mountCmdWidth is the command vector width, one scalar per axis
// (azimuth, elevation, rotator).
const mountCmdWidth = 3

// NewMountAdapter builds the mount controller adapter: feedback from
// OSSAzDriveD, OSSElDriveD and OSSGIRDriveD drives a MountCmd command
// vector through the supplied filter. The three drive feedback ports
// are concatenated back to back, in that order (offsets 0, 20, 40),
// into the filter's input vector.
func NewMountAdapter(filter Filter) (*Adapter, error) {
	return NewAdapter(filter,
		[]component.TagSchema{
			{Tag: catalog.TagOSSAzDriveD, Width: mountDriveWidth},
			{Tag: catalog.TagOSSElDriveD, Width: mountDriveWidth},
			{Tag: catalog.TagOSSGIRDriveD, Width: mountDriveWidth},
		},
		[]component.TagSchema{
			{Tag: catalog.TagMountCmd, Width: mountCmdWidth},
		},
	)
}
