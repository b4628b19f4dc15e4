package common

// FlowpathVersion is the current flowpathc version string.
const FlowpathVersion string = "0.1.0"

// ModuleFileName is the name of a flowpath project's configuration file.
const ModuleFileName string = "flowpath.mod"

// ContextParamName is the name of the implicit context parameter injected
// into every lowered decoder function.
const ContextParamName string = "__context"
