// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries immutable build-time metadata embedded into the console
// binary.
//
// Values are injected by linker flags during CI/CD and shown in the TUI build
// info window (hotkey "v" on the main menu).
type AppBuildInfo struct {
	appName      string
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(appName, buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		appName:      appName,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// AppName returns the human-readable application name.
func (a AppBuildInfo) AppName() string {
	return a.appName
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}
