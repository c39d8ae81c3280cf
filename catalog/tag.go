// Package catalog defines the closed, typed enumeration of signals that
// flow across the IO bus connecting the modal engine, the wind-load
// source, and the controller adapters.
package catalog

// Tag identifies a named physical quantity on the IO bus. The set of tags
// is closed: adding a new one is a source change, not a runtime operation.
type Tag int

// The catalog. Names are chosen to match the corresponding FEM
// input/output entry names bit-exactly (see MatchInputs/MatchOutputs);
// renaming one of these requires a coordinated FEM rebuild.
const (
	TagUnknown Tag = iota

	// Wind-pressure carrying structural bodies. Match both FEM inputs and
	// wind-load record streams.
	TagOSSTopEnd6F
	TagOSSTruss6F
	TagOSSGIR6F
	TagOSSCRING6F
	TagOSSCellLcl6F
	TagOSSM1Lcl6F
	TagMCM2Lcl6F

	// ASM wiring preset targets. These never appear in a wind-load record
	// under their own name; the "ASM" preset remaps OSSTopEnd6F's and
	// MCM2Lcl6F's streams onto them (see wind.SelectAllWithASM).
	TagMCM2TE6F
	TagMCM2RB6F

	// Mount drives.
	TagOSSAzDriveF
	TagOSSElDriveF
	TagOSSGIRDriveF
	TagOSSAzDriveTorque
	TagOSSElDriveTorque
	TagOSSRotDriveTorque
	TagOSSAzDriveD
	TagOSSElDriveD
	TagOSSGIRDriveD
	TagOSSAzEncoderAngle
	TagOSSElEncoderAngle
	TagOSSRotEncoderAngle

	// M1 structure.
	TagOSSM1Lcl
	TagOSSHarpointDeltaF
	TagOSSHardpointD

	// M2.
	TagMCM2Lcl6D

	// Controller-only auxiliary tags: never matched against a FEM entry,
	// produced and consumed entirely within the controller layer.
	TagMountCmd
	TagM1HPCmd

	tagCount
)

type tagInfo struct {
	name      string
	femInput  bool
	femOutput bool
	windLoad  bool
}

var tagTable = [tagCount]tagInfo{
	TagUnknown:            {name: "Unknown"},
	TagOSSTopEnd6F:        {name: "OSSTopEnd6F", femInput: true, windLoad: true},
	TagOSSTruss6F:         {name: "OSSTruss6F", femInput: true, windLoad: true},
	TagOSSGIR6F:           {name: "OSSGIR6F", femInput: true, windLoad: true},
	TagOSSCRING6F:         {name: "OSSCRING6F", femInput: true, windLoad: true},
	TagOSSCellLcl6F:       {name: "OSSCellLcl6F", femInput: true, windLoad: true},
	TagOSSM1Lcl6F:         {name: "OSSM1Lcl6F", femInput: true, windLoad: true},
	TagMCM2Lcl6F:          {name: "MCM2Lcl6F", femInput: true, windLoad: true},
	TagMCM2TE6F:           {name: "MCM2TE6F", femInput: true},
	TagMCM2RB6F:           {name: "MCM2RB6F", femInput: true},
	TagOSSAzDriveF:        {name: "OSSAzDriveF", femInput: true},
	TagOSSElDriveF:        {name: "OSSElDriveF", femInput: true},
	TagOSSGIRDriveF:       {name: "OSSGIRDriveF", femInput: true},
	TagOSSAzDriveTorque:   {name: "OSSAzDriveTorque", femInput: true},
	TagOSSElDriveTorque:   {name: "OSSElDriveTorque", femInput: true},
	TagOSSRotDriveTorque:  {name: "OSSRotDriveTorque", femInput: true},
	TagOSSAzDriveD:        {name: "OSSAzDriveD", femOutput: true},
	TagOSSElDriveD:        {name: "OSSElDriveD", femOutput: true},
	TagOSSGIRDriveD:       {name: "OSSGIRDriveD", femOutput: true},
	TagOSSAzEncoderAngle:  {name: "OSSAzEncoderAngle", femOutput: true},
	TagOSSElEncoderAngle:  {name: "OSSElEncoderAngle", femOutput: true},
	TagOSSRotEncoderAngle: {name: "OSSRotEncoderAngle", femOutput: true},
	TagOSSM1Lcl:           {name: "OSSM1Lcl", femOutput: true},
	TagOSSHarpointDeltaF:  {name: "OSSHarpointDeltaF", femInput: true},
	TagOSSHardpointD:      {name: "OSSHardpointD", femOutput: true},
	TagMCM2Lcl6D:          {name: "MCM2Lcl6D", femOutput: true},
	TagMountCmd:           {name: "MountCmd"},
	TagM1HPCmd:            {name: "M1HPCmd"},
}

// String returns the tag's canonical identifier. It MUST match the FEM
// entry name bit-exactly for tags that match FEM inputs or outputs.
func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagTable) {
		return "InvalidTag"
	}
	return tagTable[t].name
}

// MatchesFEMInputs reports whether this tag can match entries in a FEM's
// input list.
func (t Tag) MatchesFEMInputs() bool {
	if t < 0 || int(t) >= len(tagTable) {
		return false
	}
	return tagTable[t].femInput
}

// MatchesFEMOutputs reports whether this tag can match entries in a FEM's
// output list.
func (t Tag) MatchesFEMOutputs() bool {
	if t < 0 || int(t) >= len(tagTable) {
		return false
	}
	return tagTable[t].femOutput
}

// TagByName looks up a tag by its canonical name. Used when matching
// against externally loaded FEM port names.
func TagByName(name string) (Tag, bool) {
	for i, info := range tagTable {
		if i == int(TagUnknown) {
			continue
		}
		if info.name == name {
			return Tag(i), true
		}
	}
	return TagUnknown, false
}
